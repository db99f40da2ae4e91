package response

import (
	"encoding/json"
	"time"

	"imobtech_xpto/internal/domain/entities"
)

type ProposalResponse struct {
	ProposalID string `json:"proposal_id"`
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	SellerName string `json:"seller_name"`
	Status     string `json:"status"`

	TotalMonthly        float64 `json:"total_monthly"`
	TotalImplementation float64 `json:"total_implementation"`
	PostPaidTotal       float64 `json:"post_paid_total"`

	CatalogHash string          `json:"catalog_hash"`
	Data        json.RawMessage `json:"data,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ProposalID:          p.ID,
		ID:                  p.ID,
		ClientName:          p.ClientName,
		SellerName:          p.SellerName,
		Status:              string(p.Status),
		TotalMonthly:        p.TotalMonthly,
		TotalImplementation: p.TotalImplementation,
		PostPaidTotal:       p.PostPaidTotal,
		CatalogHash:         p.CatalogHash,
		Data:                p.Data,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

package entities

import (
	"encoding/json"
	"time"

	"imobtech_xpto/internal/domain/pricing"
)

// ProposalStatus represents the lifecycle of a sales proposal.
//
// Domain notes:
//   - The pricing-service is the source of truth for proposal state.
//   - A proposal snapshot is write-once; only its status moves.

type ProposalStatus string

const (
	ProposalStatusEnviada   ProposalStatus = "enviada"
	ProposalStatusAceita    ProposalStatus = "aceita"
	ProposalStatusRecusada  ProposalStatus = "recusada"
	ProposalStatusCancelada ProposalStatus = "cancelada"
)

// Proposal is the persisted snapshot of an assembled sales proposal.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Data holds the full pricing.ProposalData exactly as assembled at click-time;
// the service never recomputes a persisted proposal. CatalogHash identifies
// the pricing table the snapshot was priced against.
type Proposal struct {
	ID         string         `json:"id"`
	ClientName string         `json:"client_name"`
	SellerName string         `json:"seller_name"`
	Status     ProposalStatus `json:"status"`

	TotalMonthly        float64 `json:"total_monthly"`
	TotalImplementation float64 `json:"total_implementation"`
	PostPaidTotal       float64 `json:"post_paid_total"`

	CatalogHash string          `json:"catalog_hash"`
	Data        json.RawMessage `json:"data"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProposal snapshots assembled proposal data into a persistable entity.
func NewProposal(id string, data pricing.ProposalData, now time.Time) (Proposal, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Proposal{}, err
	}
	return Proposal{
		ID:                  id,
		ClientName:          data.Identification.ClientName,
		SellerName:          data.Identification.SellerName,
		Status:              ProposalStatusEnviada,
		TotalMonthly:        data.TotalMonthly,
		TotalImplementation: data.TotalImplementation,
		PostPaidTotal:       data.PostPaidTotal,
		CatalogHash:         data.CatalogHash,
		Data:                raw,
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

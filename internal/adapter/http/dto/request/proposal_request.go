package request

import (
	"strings"

	"imobtech_xpto/internal/domain/pricing"
)

// ProposalRequest is the export payload: the quote configuration plus the
// identification fields printed on the PDF.
type ProposalRequest struct {
	QuoteRequest

	SellerName  string `json:"seller_name"`
	SellerEmail string `json:"seller_email"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email"`
	AgencyName  string `json:"agency_name"`
}

func (r ProposalRequest) ToIdentification() pricing.Identification {
	return pricing.Identification{
		SellerName:  strings.TrimSpace(r.SellerName),
		SellerEmail: strings.TrimSpace(r.SellerEmail),
		ClientName:  strings.TrimSpace(r.ClientName),
		ClientEmail: strings.TrimSpace(r.ClientEmail),
		AgencyName:  strings.TrimSpace(r.AgencyName),
	}
}

// ProposalActionRequest identifies a proposal for a status transition.
type ProposalActionRequest struct {
	ProposalID string `json:"proposal_id" binding:"required"`
}

func (r ProposalActionRequest) ResolveProposalID() string {
	return strings.TrimSpace(r.ProposalID)
}

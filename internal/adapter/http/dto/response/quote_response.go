package response

import "imobtech_xpto/internal/domain/pricing"

// QuoteResponse is the on-screen summary payload: the assembled pricing data
// as computed, nothing persisted.
type QuoteResponse struct {
	Quote pricing.ProposalData `json:"quote"`
}

func FromQuote(data pricing.ProposalData) QuoteResponse {
	return QuoteResponse{Quote: data}
}

// PostPaidResponse carries only the variable-cost breakdown.
type PostPaidResponse struct {
	PostPaid pricing.PostPaidBreakdown `json:"post_paid"`
	Total    float64                   `json:"total"`
}

func FromPostPaid(b pricing.PostPaidBreakdown) PostPaidResponse {
	return PostPaidResponse{PostPaid: b, Total: b.Total}
}

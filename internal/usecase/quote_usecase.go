package usecase

import (
	"errors"
	"time"

	"imobtech_xpto/internal/domain/catalog"
	"imobtech_xpto/internal/domain/pricing"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

// IQuoteUseCase exposes the on-screen calculator: full quotes and post-paid
// breakdowns computed from the current form state, nothing persisted.

type IQuoteUseCase interface {
	ComputeQuote(cfg pricing.Config) (pricing.ProposalData, error)
	ComputePostPaid(cfg pricing.Config) (pricing.PostPaidBreakdown, error)
}

type QuoteUseCase struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(cat *catalog.Catalog) *QuoteUseCase {
	return &QuoteUseCase{catalog: cat, now: time.Now}
}

func (u *QuoteUseCase) ComputeQuote(cfg pricing.Config) (pricing.ProposalData, error) {
	data, err := pricing.AssembleProposal(u.catalog, cfg, pricing.Identification{}, u.now())
	if err != nil {
		return pricing.ProposalData{}, wrapConfigError(err)
	}
	return data, nil
}

func (u *QuoteUseCase) ComputePostPaid(cfg pricing.Config) (pricing.PostPaidBreakdown, error) {
	breakdown, err := pricing.SummaryPostPaid(u.catalog, cfg)
	if err != nil {
		return pricing.PostPaidBreakdown{}, wrapConfigError(err)
	}
	return breakdown, nil
}

// wrapConfigError folds catalog mismatch errors under a single sentinel the
// handlers can map to a 422.
func wrapConfigError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrUnknownProduct),
		errors.Is(err, catalog.ErrUnknownPlanTier),
		errors.Is(err, catalog.ErrUnknownFrequency),
		errors.Is(err, catalog.ErrUnknownAddon),
		errors.Is(err, catalog.ErrUnknownKombo):
		return errors.Join(ErrInvalidConfiguration, err)
	}
	return err
}

package usecase

import (
	"errors"
	"testing"

	"imobtech_xpto/internal/domain/catalog"
	"imobtech_xpto/internal/domain/pricing"
)

func validQuoteConfig() pricing.Config {
	return pricing.Config{
		Product:   catalog.ProductImob,
		PlanImob:  catalog.PlanK,
		Frequency: catalog.FrequencyAnnual,
		Addons: pricing.AddonSet{
			catalog.AddonLeads:        true,
			catalog.AddonInteligencia: true,
			catalog.AddonAssinatura:   true,
		},
		Metrics: pricing.Metrics{Users: 10},
	}
}

func TestQuoteUseCase_ComputeQuote(t *testing.T) {
	uc := NewQuoteUseCase(catalog.Default())

	t.Run("returns an assembled quote", func(t *testing.T) {
		data, err := uc.ComputeQuote(validQuoteConfig())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if data.Kombo != catalog.KomboImobPro {
			t.Errorf("kombo = %q, want imob_pro", data.Kombo)
		}
		if data.TotalMonthly <= 0 {
			t.Errorf("total monthly = %v, want > 0", data.TotalMonthly)
		}
		if data.CatalogHash == "" {
			t.Error("catalog hash must be set")
		}
	})

	t.Run("maps catalog mismatches to the configuration sentinel", func(t *testing.T) {
		cfg := validQuoteConfig()
		cfg.Product = "hotel"
		_, err := uc.ComputeQuote(cfg)
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
		}
		if !errors.Is(err, catalog.ErrUnknownProduct) {
			t.Fatalf("underlying cause must be preserved, got %v", err)
		}
	})
}

func TestQuoteUseCase_ComputePostPaid(t *testing.T) {
	uc := NewQuoteUseCase(catalog.Default())

	t.Run("returns the breakdown", func(t *testing.T) {
		b, err := uc.ComputePostPaid(validQuoteConfig())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 10 users on K bill 3 extra at 35.
		if b.ImobAddons.Subtotal != 105 {
			t.Errorf("imob subtotal = %v, want 105", b.ImobAddons.Subtotal)
		}
	})

	t.Run("maps unknown frequency to the configuration sentinel", func(t *testing.T) {
		cfg := validQuoteConfig()
		cfg.Frequency = "weekly"
		_, err := uc.ComputePostPaid(cfg)
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
		}
	})
}

package pricing

import (
	"testing"

	"imobtech_xpto/internal/domain/catalog"
)

func TestComputeRevenue(t *testing.T) {
	cat := catalog.Default()

	base := Config{
		Product: catalog.ProductLoc, PlanLoc: catalog.PlanK,
		Frequency: catalog.FrequencyMonthly,
		Addons:    AddonSet{catalog.AddonPay: true, catalog.AddonSeguros: true},
		Metrics: Metrics{
			ContractsManaged: 300,
			BoletoCharge:     ChargedFee{Enabled: true, Amount: 6},
			SplitCharge:      ChargedFee{Enabled: true, Amount: 4},
		},
	}

	t.Run("full pass-through revenue", func(t *testing.T) {
		r, err := ComputeRevenue(cat, base)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Boleto != 1800 {
			t.Errorf("boleto = %v, want 1800 (300 × 6)", r.Boleto)
		}
		if r.Split != 1200 {
			t.Errorf("split = %v, want 1200 (300 × 4)", r.Split)
		}
		if r.Insurance != 2400 {
			t.Errorf("insurance = %v, want 2400 (300 × 8)", r.Insurance)
		}
		if r.Total != 5400 {
			t.Errorf("total = %v, want 5400", r.Total)
		}
	})

	t.Run("boleto and split require pay", func(t *testing.T) {
		cfg := base
		cfg.Addons = AddonSet{catalog.AddonSeguros: true}
		r, err := ComputeRevenue(cat, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Boleto != 0 || r.Split != 0 {
			t.Errorf("boleto/split = %v/%v, want 0/0 without Pay", r.Boleto, r.Split)
		}
		if r.Insurance != 2400 {
			t.Errorf("insurance = %v, want 2400", r.Insurance)
		}
	})

	t.Run("insurance requires seguros", func(t *testing.T) {
		cfg := base
		cfg.Addons = AddonSet{catalog.AddonPay: true}
		r, err := ComputeRevenue(cat, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Insurance != 0 {
			t.Errorf("insurance = %v, want 0 without Seguros", r.Insurance)
		}
	})

	t.Run("disabled fees earn nothing", func(t *testing.T) {
		cfg := base
		cfg.Metrics.BoletoCharge.Enabled = false
		cfg.Metrics.SplitCharge.Enabled = false
		r, err := ComputeRevenue(cat, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Boleto != 0 || r.Split != 0 {
			t.Errorf("boleto/split = %v/%v, want 0/0 when fees are off", r.Boleto, r.Split)
		}
	})

	t.Run("imob only earns nothing", func(t *testing.T) {
		cfg := Config{
			Product: catalog.ProductImob, PlanImob: catalog.PlanK,
			Frequency: catalog.FrequencyMonthly,
			Addons:    AddonSet{catalog.AddonPay: true, catalog.AddonSeguros: true},
			Metrics:   base.Metrics,
		}
		r, err := ComputeRevenue(cat, cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Total != 0 {
			t.Errorf("total = %v, want 0 without the Locação line", r.Total)
		}
	})
}

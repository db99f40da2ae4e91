package pricing

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
	"time"

	"imobtech_xpto/internal/domain/catalog"
)

func proposalFixtureConfig() Config {
	return Config{
		Product: catalog.ProductImob, PlanImob: catalog.PlanK,
		Frequency: catalog.FrequencyAnnual,
		Addons: AddonSet{
			catalog.AddonLeads:        true,
			catalog.AddonInteligencia: true,
			catalog.AddonAssinatura:   true,
		},
		Metrics: Metrics{
			Users: 10, LeadsPerMonth: 350, ClosingsPerMonth: 18,
			LeadChannel: WhatsAppLeads(),
		},
	}
}

func TestAssembleProposal(t *testing.T) {
	cat := catalog.Default()
	ident := Identification{
		SellerName: "Maria", SellerEmail: "maria@example.com",
		ClientName: "Imobiliária Central", AgencyName: "Central",
	}
	now := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	data, err := AssembleProposal(cat, proposalFixtureConfig(), ident, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("detects the bundle", func(t *testing.T) {
		if data.Kombo != catalog.KomboImobPro {
			t.Errorf("kombo = %q, want imob_pro", data.Kombo)
		}
		if data.KomboName != "Kombo Imob Pro" {
			t.Errorf("kombo name = %q", data.KomboName)
		}
	})

	t.Run("totals derive from the line items", func(t *testing.T) {
		// 388 + 176 + 133 + 84 under the 15% bundle discount.
		if data.TotalMonthly != 781 {
			t.Errorf("total monthly = %v, want 781", data.TotalMonthly)
		}
		if data.TotalAnnual != 781*12 {
			t.Errorf("total annual = %v, want %v", data.TotalAnnual, 781*12)
		}
		// Add-on fees are waived by the bundle; the product fee is not.
		if data.TotalImplementation != 1497 {
			t.Errorf("total implementation = %v, want 1497", data.TotalImplementation)
		}
		if data.FirstYearTotal != data.TotalAnnual+data.TotalImplementation {
			t.Errorf("first year total = %v, want annual + implementation", data.FirstYearTotal)
		}
	})

	t.Run("net gain balances revenue against costs", func(t *testing.T) {
		want := data.Revenue.Total - data.TotalMonthly - data.PostPaid.Total
		if math.Abs(data.NetGain-want) > 1e-9 {
			t.Errorf("net gain = %v, want %v", data.NetGain, want)
		}
	})

	t.Run("carries catalog identity and timestamp", func(t *testing.T) {
		if data.CatalogVersion != cat.Version {
			t.Errorf("catalog version = %q, want %q", data.CatalogVersion, cat.Version)
		}
		if data.CatalogHash != cat.Hash() {
			t.Error("catalog hash mismatch")
		}
		if !data.GeneratedAt.Equal(now) {
			t.Errorf("generated at = %v, want %v", data.GeneratedAt, now)
		}
	})

	t.Run("loc plan omitted on imob-only", func(t *testing.T) {
		if data.PlanImob != catalog.PlanK {
			t.Errorf("plan imob = %q, want k", data.PlanImob)
		}
		if data.PlanLoc != "" {
			t.Errorf("plan loc = %q, want empty", data.PlanLoc)
		}
	})

	t.Run("assembly is deterministic", func(t *testing.T) {
		again, err := AssembleProposal(cat, proposalFixtureConfig(), ident, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(data, again) {
			t.Error("identical inputs must assemble identical proposals")
		}
	})

	t.Run("snapshot survives a json round trip", func(t *testing.T) {
		raw, err := json.Marshal(data)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var back ProposalData
		if err := json.Unmarshal(raw, &back); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if back.TotalMonthly != data.TotalMonthly || back.Kombo != data.Kombo {
			t.Error("snapshot lost data in the round trip")
		}
	})
}

func TestDisplayAddonsExcludesCash(t *testing.T) {
	cat := catalog.Default()
	cfg := Config{
		Product: catalog.ProductLoc, PlanLoc: catalog.PlanK,
		Frequency: catalog.FrequencyAnnual,
		Addons: AddonSet{
			catalog.AddonPay:        true,
			catalog.AddonAssinatura: true,
			catalog.AddonCash:       true,
		},
	}

	data, err := AssembleProposal(cat, cfg, Identification{ClientName: "X"}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, key := range data.SelectedAddons {
		if key == catalog.AddonCash {
			t.Fatal("cash must never appear in the display list")
		}
	}
	want := []catalog.AddonKey{catalog.AddonAssinatura, catalog.AddonPay}
	if !reflect.DeepEqual(data.SelectedAddons, want) {
		t.Errorf("selected addons = %v, want %v", data.SelectedAddons, want)
	}

	// Cash is still priced as a line item.
	foundCash := false
	for _, it := range data.Items {
		if it.Key == "cash" {
			foundCash = true
		}
	}
	if !foundCash {
		t.Error("cash must still be priced in the line items")
	}
}

func TestKomboComparison(t *testing.T) {
	cat := catalog.Default()
	cfg := proposalFixtureConfig()

	rows, err := KomboComparison(cat, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != len(cat.Kombos)+1 {
		t.Fatalf("row count = %d, want %d", len(rows), len(cat.Kombos)+1)
	}

	t.Run("baseline first with no savings", func(t *testing.T) {
		base := rows[0]
		if base.Kombo != catalog.KomboNone || base.Name != "Sem Kombo" {
			t.Errorf("baseline = %q/%q", base.Kombo, base.Name)
		}
		if base.TotalSem != base.TotalCom || base.Savings != 0 {
			t.Errorf("baseline must carry no discount: %+v", base)
		}
	})

	t.Run("savings equal sem minus com", func(t *testing.T) {
		for _, row := range rows[1:] {
			if math.Abs(row.Savings-(row.TotalSem-row.TotalCom)) > 1e-9 {
				t.Errorf("%q: savings %v != %v - %v", row.Kombo, row.Savings, row.TotalSem, row.TotalCom)
			}
			if row.Savings < 0 {
				t.Errorf("%q: negative savings %v", row.Kombo, row.Savings)
			}
		}
	})

	t.Run("rows follow catalog priority order", func(t *testing.T) {
		for i, def := range cat.Kombos {
			if rows[i+1].Kombo != def.Type {
				t.Errorf("row[%d] = %q, want %q", i+1, rows[i+1].Kombo, def.Type)
			}
		}
	})

	t.Run("works from a loc-only configuration", func(t *testing.T) {
		locCfg := Config{
			Product: catalog.ProductLoc, PlanLoc: catalog.PlanPrime,
			Frequency: catalog.FrequencyMonthly,
		}
		locRows, err := KomboComparison(cat, locCfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(locRows) != len(cat.Kombos)+1 {
			t.Fatalf("row count = %d", len(locRows))
		}
	})
}

func TestFrequencyComparison(t *testing.T) {
	cat := catalog.Default()
	cfg := proposalFixtureConfig()

	rows, err := FrequencyComparison(cat, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != len(catalog.Frequencies) {
		t.Fatalf("row count = %d, want %d", len(rows), len(catalog.Frequencies))
	}

	t.Run("ordered from shortest to longest commitment", func(t *testing.T) {
		for i, freq := range catalog.Frequencies {
			if rows[i].Frequency != freq {
				t.Errorf("row[%d] = %q, want %q", i, rows[i].Frequency, freq)
			}
		}
	})

	t.Run("longer commitments cost strictly less per month", func(t *testing.T) {
		for i := 1; i < len(rows); i++ {
			if rows[i].MonthlyTotal >= rows[i-1].MonthlyTotal {
				t.Errorf("%q total %v not below %q total %v",
					rows[i].Frequency, rows[i].MonthlyTotal, rows[i-1].Frequency, rows[i-1].MonthlyTotal)
			}
		}
	})

	t.Run("installments follow the catalog terms", func(t *testing.T) {
		for _, row := range rows {
			terms, err := cat.FrequencyTerms(row.Frequency)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if row.MaxInstallments != terms.MaxInstallments {
				t.Errorf("%q installments = %d, want %d", row.Frequency, row.MaxInstallments, terms.MaxInstallments)
			}
		}
	})

	t.Run("selected frequency does not change the rows", func(t *testing.T) {
		other := cfg
		other.Frequency = catalog.FrequencyMonthly
		otherRows, err := FrequencyComparison(cat, other)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(rows, otherRows) {
			t.Error("comparison must be independent of the selected frequency")
		}
	})
}

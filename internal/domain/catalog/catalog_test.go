package catalog

import (
	"errors"
	"testing"
)

func TestAddonAvailable(t *testing.T) {
	tests := []struct {
		name    string
		key     AddonKey
		product ProductSelection
		want    bool
	}{
		{"leads available on imob", AddonLeads, ProductImob, true},
		{"leads available on both", AddonLeads, ProductBoth, true},
		{"leads unavailable on loc", AddonLeads, ProductLoc, false},
		{"pay available on loc", AddonPay, ProductLoc, true},
		{"pay available on both", AddonPay, ProductBoth, true},
		{"pay unavailable on imob", AddonPay, ProductImob, false},
		{"seguros unavailable on imob", AddonSeguros, ProductImob, false},
		{"cash unavailable on imob", AddonCash, ProductImob, false},
		{"inteligencia universal", AddonInteligencia, ProductImob, true},
		{"assinatura universal", AddonAssinatura, ProductLoc, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddonAvailable(tt.key, tt.product)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("AddonAvailable(%q, %q) = %v, want %v", tt.key, tt.product, got, tt.want)
			}
		})
	}

	t.Run("unknown addon", func(t *testing.T) {
		_, err := AddonAvailable("turbo", ProductImob)
		if !errors.Is(err, ErrUnknownAddon) {
			t.Fatalf("expected ErrUnknownAddon, got %v", err)
		}
	})
}

func TestCatalogLookups(t *testing.T) {
	cat := Default()

	t.Run("product annual price", func(t *testing.T) {
		price, err := cat.ProductAnnualPrice(ProductImob, PlanK)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if price != 5388 {
			t.Errorf("imob k annual = %v, want 5388", price)
		}
	})

	t.Run("product annual price rejects both", func(t *testing.T) {
		_, err := cat.ProductAnnualPrice(ProductBoth, PlanK)
		if !errors.Is(err, ErrUnknownProduct) {
			t.Fatalf("expected ErrUnknownProduct, got %v", err)
		}
	})

	t.Run("unknown plan tier", func(t *testing.T) {
		_, err := cat.ProductAnnualPrice(ProductImob, "mega")
		if !errors.Is(err, ErrUnknownPlanTier) {
			t.Fatalf("expected ErrUnknownPlanTier, got %v", err)
		}
	})

	t.Run("unknown frequency", func(t *testing.T) {
		_, err := cat.FrequencyTerms("weekly")
		if !errors.Is(err, ErrUnknownFrequency) {
			t.Fatalf("expected ErrUnknownFrequency, got %v", err)
		}
	})

	t.Run("unknown kombo", func(t *testing.T) {
		_, err := cat.Kombo("mega_kombo")
		if !errors.Is(err, ErrUnknownKombo) {
			t.Fatalf("expected ErrUnknownKombo, got %v", err)
		}
	})

	t.Run("kombo by type", func(t *testing.T) {
		def, err := cat.Kombo(KomboElite)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if def.Discount != 0.20 {
			t.Errorf("elite discount = %v, want 0.20", def.Discount)
		}
		if !def.WaivesProducts {
			t.Error("elite should waive product implementation fees")
		}
	})
}

func TestDefaultCatalogShape(t *testing.T) {
	cat := Default()

	t.Run("kombos ordered by priority", func(t *testing.T) {
		want := []KomboType{KomboElite, KomboCore, KomboImobPro, KomboImobStart, KomboLocPro}
		if len(cat.Kombos) != len(want) {
			t.Fatalf("kombo count = %d, want %d", len(cat.Kombos), len(want))
		}
		for i, d := range cat.Kombos {
			if d.Type != want[i] {
				t.Errorf("kombo[%d] = %q, want %q", i, d.Type, want[i])
			}
		}
	})

	t.Run("every plan tier has schedules and allowances", func(t *testing.T) {
		for _, tier := range PlanTiers {
			if _, err := cat.UserTiersFor(tier); err != nil {
				t.Errorf("user tiers for %q: %v", tier, err)
			}
			if _, err := cat.ContractTiersFor(tier); err != nil {
				t.Errorf("contract tiers for %q: %v", tier, err)
			}
			if _, err := cat.BoletoSplitTiersFor(tier); err != nil {
				t.Errorf("boleto/split tiers for %q: %v", tier, err)
			}
			if _, err := cat.IncludedUsersFor(tier); err != nil {
				t.Errorf("included users for %q: %v", tier, err)
			}
			if _, err := cat.IncludedContractsFor(tier); err != nil {
				t.Errorf("included contracts for %q: %v", tier, err)
			}
		}
	})

	t.Run("rate schedules end unbounded", func(t *testing.T) {
		check := func(name string, tiers []Tier) {
			if len(tiers) == 0 {
				t.Errorf("%s: empty schedule", name)
				return
			}
			last := tiers[len(tiers)-1]
			if !last.Unbounded() {
				t.Errorf("%s: last band must be unbounded, got to=%d", name, last.To)
			}
			for _, band := range tiers[:len(tiers)-1] {
				if band.Unbounded() {
					t.Errorf("%s: only the last band may be unbounded", name)
				}
			}
		}
		for tier, ts := range cat.UserTiers {
			check("user/"+string(tier), ts)
		}
		for tier, ts := range cat.ContractTiers {
			check("contract/"+string(tier), ts)
		}
		for tier, ts := range cat.BoletoSplitTiers {
			check("boleto/"+string(tier), ts)
		}
		check("leads", cat.LeadTiers)
		check("signatures", cat.SignatureTiers)
	})
}

func TestCatalogHash(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		if Default().Hash() != Default().Hash() {
			t.Error("hash must be stable across identical catalogs")
		}
	})

	t.Run("sensitive to price changes", func(t *testing.T) {
		a := Default()
		b := Default()
		b.Imob.AnnualPrice[PlanK] += 100
		if a.Hash() == b.Hash() {
			t.Error("hash must change when a price changes")
		}
	})

	t.Run("sensitive to version", func(t *testing.T) {
		a := Default()
		b := Default()
		b.Version = "2099-01"
		if a.Hash() == b.Hash() {
			t.Error("hash must change when the version changes")
		}
	})
}

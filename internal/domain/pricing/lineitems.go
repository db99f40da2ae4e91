package pricing

import "imobtech_xpto/internal/domain/catalog"

// LineItem is one priced row of a quote.
//
// MonthlyRef* always carry the monthly-frequency reference price so the
// proposal can show "reference vs negotiated" regardless of the billing cycle.
// Price* carry the price at the selected frequency. ComKombo values never
// exceed their SemKombo counterparts.
type LineItem struct {
	Key  string `json:"key"`
	Name string `json:"name"`

	MonthlyRefSemKombo float64 `json:"monthly_ref_sem_kombo"`
	MonthlyRefComKombo float64 `json:"monthly_ref_com_kombo"`
	PriceSemKombo      float64 `json:"price_sem_kombo"`
	PriceComKombo      float64 `json:"price_com_kombo"`

	Implantation float64 `json:"implantation"`
}

var productNames = map[catalog.ProductSelection]string{
	catalog.ProductImob: "Imob",
	catalog.ProductLoc:  "Locação",
}

var addonNames = map[catalog.AddonKey]string{
	catalog.AddonLeads:        "Leads WhatsApp",
	catalog.AddonInteligencia: "Inteligência",
	catalog.AddonAssinatura:   "Assinatura Digital",
	catalog.AddonPay:          "Pay",
	catalog.AddonSeguros:      "Seguros",
	catalog.AddonCash:         "Cash",
}

// BuildLineItems prices every eligible product and add-on of the configuration
// under the detected bundle. Order is stable: products first, then add-ons in
// catalog order, so summaries and PDFs render deterministically.
func BuildLineItems(cat *catalog.Catalog, cfg Config) ([]LineItem, error) {
	cfg = cfg.normalized()
	if err := cfg.Validate(cat); err != nil {
		return nil, err
	}
	kombo, err := DetectKombo(cat, cfg)
	if err != nil {
		return nil, err
	}
	return buildLineItems(cat, cfg, kombo)
}

func buildLineItems(cat *catalog.Catalog, cfg Config, kombo catalog.KomboType) ([]LineItem, error) {
	var def catalog.KomboDef
	if kombo != catalog.KomboNone {
		var err error
		def, err = cat.Kombo(kombo)
		if err != nil {
			return nil, err
		}
	}

	var items []LineItem

	appendProduct := func(product catalog.ProductSelection, tier catalog.PlanTier, pricing catalog.ProductPricing) error {
		annual, err := cat.ProductAnnualPrice(product, tier)
		if err != nil {
			return err
		}
		implantation := pricing.Implementation
		if def.WaivesProducts {
			implantation = 0
		}
		item, err := priceItem(cat, cfg, string(product), productNames[product]+" "+planLabel(tier), annual, def.Discount, implantation)
		if err != nil {
			return err
		}
		items = append(items, item)
		return nil
	}

	if cfg.Product.IncludesImob() {
		if err := appendProduct(catalog.ProductImob, cfg.PlanImob, cat.Imob); err != nil {
			return nil, err
		}
	}
	if cfg.Product.IncludesLoc() {
		if err := appendProduct(catalog.ProductLoc, cfg.PlanLoc, cat.Loc); err != nil {
			return nil, err
		}
	}

	for _, key := range catalog.AddonOrder {
		active, err := cfg.Addons.ActiveFor(key, cfg.Product)
		if err != nil {
			return nil, err
		}
		if !active {
			continue
		}
		pricing, err := cat.AddonPricing(key)
		if err != nil {
			return nil, err
		}
		implantation := pricing.Implementation
		if kombo != catalog.KomboNone && def.WaivesFee(key) {
			implantation = 0
		}
		item, err := priceItem(cat, cfg, string(key), addonNames[key], pricing.AnnualPrice, def.Discount, implantation)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func priceItem(cat *catalog.Catalog, cfg Config, key, name string, annual, discount, implantation float64) (LineItem, error) {
	monthlyRef, err := MonthlyLicense(cat, annual, catalog.FrequencyMonthly)
	if err != nil {
		return LineItem{}, err
	}
	price, err := MonthlyLicense(cat, annual, cfg.Frequency)
	if err != nil {
		return LineItem{}, err
	}
	return LineItem{
		Key:                key,
		Name:               name,
		MonthlyRefSemKombo: monthlyRef,
		MonthlyRefComKombo: DiscountedLicense(monthlyRef, discount),
		PriceSemKombo:      price,
		PriceComKombo:      DiscountedLicense(price, discount),
		Implantation:       implantation,
	}, nil
}

func planLabel(tier catalog.PlanTier) string {
	switch tier {
	case catalog.PlanPrime:
		return "Prime"
	case catalog.PlanK:
		return "K"
	case catalog.PlanK2:
		return "K2"
	}
	return string(tier)
}

package pricing

import "imobtech_xpto/internal/domain/catalog"

// Revenue is the ancillary income the client earns by passing fees through to
// tenants and owners. Flat-rate multiplication, no tiering.
type Revenue struct {
	Boleto    float64 `json:"boleto"`
	Split     float64 `json:"split"`
	Insurance float64 `json:"insurance"`
	Total     float64 `json:"total"`
}

// ComputeRevenue returns the monthly pass-through revenue for the
// configuration. Boleto and split revenue require the Pay add-on; insurance
// commission requires Seguros. All three require the Locação line.
func ComputeRevenue(cat *catalog.Catalog, cfg Config) (Revenue, error) {
	cfg = cfg.normalized()
	if err := cfg.Validate(cat); err != nil {
		return Revenue{}, err
	}

	var r Revenue
	contracts := float64(cfg.Metrics.ContractsManaged)

	payActive, err := cfg.Addons.ActiveFor(catalog.AddonPay, cfg.Product)
	if err != nil {
		return Revenue{}, err
	}
	if payActive && cfg.Product.IncludesLoc() {
		if cfg.Metrics.BoletoCharge.Enabled {
			r.Boleto = contracts * cfg.Metrics.BoletoCharge.Amount
		}
		if cfg.Metrics.SplitCharge.Enabled {
			r.Split = contracts * cfg.Metrics.SplitCharge.Amount
		}
	}

	segurosActive, err := cfg.Addons.ActiveFor(catalog.AddonSeguros, cfg.Product)
	if err != nil {
		return Revenue{}, err
	}
	if segurosActive && cfg.Product.IncludesLoc() {
		r.Insurance = contracts * cat.InsuranceCommission
	}

	r.Total = r.Boleto + r.Split + r.Insurance
	return r, nil
}

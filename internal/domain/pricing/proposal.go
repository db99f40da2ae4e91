package pricing

import (
	"time"

	"imobtech_xpto/internal/domain/catalog"
)

// Identification carries the vendor/client fields printed on the proposal.
type Identification struct {
	SellerName  string `json:"seller_name"`
	SellerEmail string `json:"seller_email"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	AgencyName  string `json:"agency_name"`
}

// KomboComparisonRow shows what the client would pay under one bundle: the
// bundle's canonical add-on mix priced à la carte, the discounted monthly
// total, and the savings between the two.
type KomboComparisonRow struct {
	Kombo    catalog.KomboType `json:"kombo"`
	Name     string            `json:"name"`
	TotalSem float64           `json:"total_sem"`
	TotalCom float64           `json:"total_com"`
	Savings  float64           `json:"savings"`
	Discount float64           `json:"discount"`
}

// FrequencyComparisonRow shows the monthly-equivalent license total at one
// payment frequency, independent of the frequency currently selected.
type FrequencyComparisonRow struct {
	Frequency       catalog.PaymentFrequency `json:"frequency"`
	MonthlyTotal    float64                  `json:"monthly_total"`
	MaxInstallments int                      `json:"max_installments"`
}

// ProposalData is the flat object consumed by the PDF renderer and persisted
// as a write-once snapshot. Everything in it derives from (catalog, config,
// timestamp); recomputing with the same inputs yields an identical value.
type ProposalData struct {
	Identification Identification `json:"identification"`

	Product   catalog.ProductSelection `json:"product"`
	PlanImob  catalog.PlanTier         `json:"plan_imob,omitempty"`
	PlanLoc   catalog.PlanTier         `json:"plan_loc,omitempty"`
	Frequency catalog.PaymentFrequency `json:"frequency"`
	Kombo     catalog.KomboType        `json:"kombo"`
	KomboName string                   `json:"kombo_name,omitempty"`

	// SelectedAddons is the display list; Cash is excluded here even when
	// priced, per commercial presentation rules.
	SelectedAddons []catalog.AddonKey `json:"selected_addons"`

	Items []LineItem `json:"items"`

	TotalMonthly        float64 `json:"total_monthly"`
	TotalAnnual         float64 `json:"total_annual"`
	TotalImplementation float64 `json:"total_implementation"`
	FirstYearTotal      float64 `json:"first_year_total"`

	PostPaid      PostPaidBreakdown `json:"post_paid"`
	PostPaidTotal float64           `json:"post_paid_total"`

	Revenue Revenue `json:"revenue"`
	NetGain float64 `json:"net_gain"`

	PrepaidUsersAmount     float64 `json:"prepaid_users_amount"`
	PrepaidContractsAmount float64 `json:"prepaid_contracts_amount"`

	KomboComparison     []KomboComparisonRow     `json:"kombo_comparison"`
	FrequencyComparison []FrequencyComparisonRow `json:"frequency_comparison"`

	CatalogVersion string    `json:"catalog_version"`
	CatalogHash    string    `json:"catalog_hash"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// AssembleProposal orchestrates the whole calculation into one proposal data
// object. It is the only producer of that object; the PDF layer and the
// summary never re-derive pricing.
func AssembleProposal(cat *catalog.Catalog, cfg Config, ident Identification, now time.Time) (ProposalData, error) {
	cfg = cfg.normalized()
	if err := cfg.Validate(cat); err != nil {
		return ProposalData{}, err
	}

	kombo, err := DetectKombo(cat, cfg)
	if err != nil {
		return ProposalData{}, err
	}
	items, err := buildLineItems(cat, cfg, kombo)
	if err != nil {
		return ProposalData{}, err
	}

	totalMonthly, totalImplementation := 0.0, 0.0
	for _, it := range items {
		totalMonthly += it.PriceComKombo
		totalImplementation += it.Implantation
	}
	totalAnnual := totalMonthly * 12

	postPaid, err := ComputePostPaid(cat, cfg)
	if err != nil {
		return ProposalData{}, err
	}
	revenue, err := ComputeRevenue(cat, cfg)
	if err != nil {
		return ProposalData{}, err
	}
	prepaidUsers, prepaidContracts, err := PrepaidAmounts(cat, cfg)
	if err != nil {
		return ProposalData{}, err
	}
	komboRows, err := KomboComparison(cat, cfg)
	if err != nil {
		return ProposalData{}, err
	}
	freqRows, err := FrequencyComparison(cat, cfg)
	if err != nil {
		return ProposalData{}, err
	}

	data := ProposalData{
		Identification:         ident,
		Product:                cfg.Product,
		Frequency:              cfg.Frequency,
		Kombo:                  kombo,
		SelectedAddons:         displayAddons(cfg),
		Items:                  items,
		TotalMonthly:           totalMonthly,
		TotalAnnual:            totalAnnual,
		TotalImplementation:    totalImplementation,
		FirstYearTotal:         totalAnnual + totalImplementation,
		PostPaid:               postPaid,
		PostPaidTotal:          postPaid.Total,
		Revenue:                revenue,
		NetGain:                revenue.Total - totalMonthly - postPaid.Total,
		PrepaidUsersAmount:     prepaidUsers,
		PrepaidContractsAmount: prepaidContracts,
		KomboComparison:        komboRows,
		FrequencyComparison:    freqRows,
		CatalogVersion:         cat.Version,
		CatalogHash:            cat.Hash(),
		GeneratedAt:            now.UTC(),
	}
	if cfg.Product.IncludesImob() {
		data.PlanImob = cfg.PlanImob
	}
	if cfg.Product.IncludesLoc() {
		data.PlanLoc = cfg.PlanLoc
	}
	if kombo != catalog.KomboNone {
		def, err := cat.Kombo(kombo)
		if err != nil {
			return ProposalData{}, err
		}
		data.KomboName = def.DisplayName
	}
	return data, nil
}

// displayAddons lists the active add-ons in catalog order, minus Cash, which
// is priced but never listed on the proposal.
func displayAddons(cfg Config) []catalog.AddonKey {
	out := []catalog.AddonKey{}
	for _, key := range catalog.AddonOrder {
		if key == catalog.AddonCash {
			continue
		}
		active, err := cfg.Addons.ActiveFor(key, cfg.Product)
		if err != nil || !active {
			continue
		}
		out = append(out, key)
	}
	return out
}

// KomboComparison builds one row per catalog bundle plus the à-la-carte
// baseline. Each bundle row prices the bundle's canonical configuration
// (its product selection and required add-on set) at the selected frequency,
// with and without the bundle discount.
func KomboComparison(cat *catalog.Catalog, cfg Config) ([]KomboComparisonRow, error) {
	cfg = cfg.normalized()
	if err := cfg.Validate(cat); err != nil {
		return nil, err
	}

	rows := make([]KomboComparisonRow, 0, len(cat.Kombos)+1)

	baseItems, err := buildLineItems(cat, cfg, catalog.KomboNone)
	if err != nil {
		return nil, err
	}
	baseTotal := 0.0
	for _, it := range baseItems {
		baseTotal += it.PriceSemKombo
	}
	rows = append(rows, KomboComparisonRow{
		Kombo:    catalog.KomboNone,
		Name:     "Sem Kombo",
		TotalSem: baseTotal,
		TotalCom: baseTotal,
	})

	for _, def := range cat.Kombos {
		komboCfg, err := ApplyKombo(cat, cfg, def.Type)
		if err != nil {
			return nil, err
		}
		// Hypothetical rows may activate a product line the current config has
		// no plan for; fall back to the other line's tier, then to K.
		if komboCfg.Product.IncludesImob() && catalog.ValidPlanTier(komboCfg.PlanImob) != nil {
			komboCfg.PlanImob = fallbackTier(komboCfg.PlanLoc)
		}
		if komboCfg.Product.IncludesLoc() && catalog.ValidPlanTier(komboCfg.PlanLoc) != nil {
			komboCfg.PlanLoc = fallbackTier(komboCfg.PlanImob)
		}
		items, err := buildLineItems(cat, komboCfg, def.Type)
		if err != nil {
			return nil, err
		}
		totalSem, totalCom := 0.0, 0.0
		for _, it := range items {
			totalSem += it.PriceSemKombo
			totalCom += it.PriceComKombo
		}
		rows = append(rows, KomboComparisonRow{
			Kombo:    def.Type,
			Name:     def.DisplayName,
			TotalSem: totalSem,
			TotalCom: totalCom,
			Savings:  totalSem - totalCom,
			Discount: def.Discount,
		})
	}
	return rows, nil
}

func fallbackTier(other catalog.PlanTier) catalog.PlanTier {
	if catalog.ValidPlanTier(other) == nil {
		return other
	}
	return catalog.PlanK
}

// FrequencyComparison builds one row per payment frequency with the
// monthly-equivalent license total the current mix would cost at it. With the
// catalog's multipliers the totals strictly decrease as the commitment
// lengthens.
func FrequencyComparison(cat *catalog.Catalog, cfg Config) ([]FrequencyComparisonRow, error) {
	cfg = cfg.normalized()

	kombo, err := DetectKombo(cat, cfg)
	if err != nil {
		return nil, err
	}

	rows := make([]FrequencyComparisonRow, 0, len(catalog.Frequencies))
	for _, freq := range catalog.Frequencies {
		terms, err := cat.FrequencyTerms(freq)
		if err != nil {
			return nil, err
		}
		freqCfg := cfg
		freqCfg.Frequency = freq
		items, err := buildLineItems(cat, freqCfg, kombo)
		if err != nil {
			return nil, err
		}
		total := 0.0
		for _, it := range items {
			total += it.PriceComKombo
		}
		rows = append(rows, FrequencyComparisonRow{
			Frequency:       freq,
			MonthlyTotal:    total,
			MaxInstallments: terms.MaxInstallments,
		})
	}
	return rows, nil
}

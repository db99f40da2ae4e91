package pricing

import "imobtech_xpto/internal/domain/catalog"

// PostPaidItem is one variable-cost line: how much usage is included, how much
// is billable, what it costs and the effective average unit price.
//
// Users and contracts bill only the excess over the included allowance.
// Boletos and splits bill the FULL contract volume with Included = 0. The
// asymmetry is commercial policy, not an oversight.
type PostPaidItem struct {
	Key        string     `json:"key"`
	Label      string     `json:"label"`
	Unit       string     `json:"unit"`
	Included   int        `json:"included"`
	Additional int        `json:"additional"`
	Total      float64    `json:"total"`
	UnitAvg    float64    `json:"unit_avg"`
	Tiers      []TierLine `json:"tiers,omitempty"`
}

// PostPaidGroup is a named section of the breakdown with its subtotal.
type PostPaidGroup struct {
	Key      string         `json:"key"`
	Label    string         `json:"label"`
	Subtotal float64        `json:"subtotal"`
	Items    []PostPaidItem `json:"items"`
}

// PostPaidBreakdown is the full variable-cost tree. Group subtotals equal the
// sum of their items; Total equals the sum of group subtotals.
type PostPaidBreakdown struct {
	Total        float64       `json:"total"`
	ImobAddons   PostPaidGroup `json:"imob_addons"`
	LocAddons    PostPaidGroup `json:"loc_addons"`
	SharedAddons PostPaidGroup `json:"shared_addons"`
}

// ComputePostPaid is the single post-paid engine. The on-screen summary and
// the PDF/export path both go through it (SummaryPostPaid, ExportPostPaid);
// there is no second implementation to drift from.
func ComputePostPaid(cat *catalog.Catalog, cfg Config) (PostPaidBreakdown, error) {
	cfg = cfg.normalized()
	if err := cfg.Validate(cat); err != nil {
		return PostPaidBreakdown{}, err
	}

	terms, err := cat.FrequencyTerms(cfg.Frequency)
	if err != nil {
		return PostPaidBreakdown{}, err
	}
	prepayUsers := cfg.PrepayUsers && terms.PrepayMonths > 0
	prepayContracts := cfg.PrepayContracts && terms.PrepayMonths > 0

	var imob, loc, shared []PostPaidItem

	if cfg.Product.IncludesImob() && !prepayUsers {
		item, err := usersItem(cat, cfg)
		if err != nil {
			return PostPaidBreakdown{}, err
		}
		imob = append(imob, item)
	}

	leadsActive, err := cfg.Addons.ActiveFor(catalog.AddonLeads, cfg.Product)
	if err != nil {
		return PostPaidBreakdown{}, err
	}
	if leadsActive && cfg.Metrics.LeadChannel.Kind() == LeadChannelWhatsApp {
		imob = append(imob, leadsItem(cat, cfg))
	}

	if cfg.Product.IncludesLoc() && !prepayContracts {
		item, err := contractsItem(cat, cfg)
		if err != nil {
			return PostPaidBreakdown{}, err
		}
		loc = append(loc, item)
	}

	payActive, err := cfg.Addons.ActiveFor(catalog.AddonPay, cfg.Product)
	if err != nil {
		return PostPaidBreakdown{}, err
	}
	if payActive && cfg.Product.IncludesLoc() {
		tiers, err := cat.BoletoSplitTiersFor(cfg.PlanLoc)
		if err != nil {
			return PostPaidBreakdown{}, err
		}
		// Boletos and splits bill the full managed-contract volume.
		if cfg.Metrics.BoletoCharge.Enabled {
			loc = append(loc, volumeItem("boletos", "Boletos emitidos", "boleto", cfg.Metrics.ContractsManaged, tiers))
		}
		if cfg.Metrics.SplitCharge.Enabled {
			loc = append(loc, volumeItem("splits", "Splits de repasse", "split", cfg.Metrics.ContractsManaged, tiers))
		}
	}

	assinaturaActive, err := cfg.Addons.ActiveFor(catalog.AddonAssinatura, cfg.Product)
	if err != nil {
		return PostPaidBreakdown{}, err
	}
	if assinaturaActive {
		shared = append(shared, signaturesItem(cat, cfg))
	}

	breakdown := PostPaidBreakdown{
		ImobAddons:   group("imob_addons", "Adicionais Imob", imob),
		LocAddons:    group("loc_addons", "Adicionais Locação", loc),
		SharedAddons: group("shared_addons", "Adicionais compartilhados", shared),
	}
	breakdown.Total = breakdown.ImobAddons.Subtotal + breakdown.LocAddons.Subtotal + breakdown.SharedAddons.Subtotal
	return breakdown, nil
}

// SummaryPostPaid is the on-screen summary adapter over the engine.
func SummaryPostPaid(cat *catalog.Catalog, cfg Config) (PostPaidBreakdown, error) {
	return ComputePostPaid(cat, cfg)
}

// ExportPostPaid is the PDF/export adapter over the engine. By construction it
// returns exactly what SummaryPostPaid returns for the same inputs.
func ExportPostPaid(cat *catalog.Catalog, cfg Config) (PostPaidBreakdown, error) {
	return ComputePostPaid(cat, cfg)
}

func usersItem(cat *catalog.Catalog, cfg Config) (PostPaidItem, error) {
	included, err := cat.IncludedUsersFor(cfg.PlanImob)
	if err != nil {
		return PostPaidItem{}, err
	}
	tiers, err := cat.UserTiersFor(cfg.PlanImob)
	if err != nil {
		return PostPaidItem{}, err
	}
	return excessItem("users", "Usuários adicionais", "usuário", cfg.Metrics.Users, included, tiers), nil
}

func contractsItem(cat *catalog.Catalog, cfg Config) (PostPaidItem, error) {
	included, err := cat.IncludedContractsFor(cfg.PlanLoc)
	if err != nil {
		return PostPaidItem{}, err
	}
	tiers, err := cat.ContractTiersFor(cfg.PlanLoc)
	if err != nil {
		return PostPaidItem{}, err
	}
	return excessItem("contracts", "Contratos adicionais", "contrato", cfg.Metrics.ContractsManaged, included, tiers), nil
}

func leadsItem(cat *catalog.Catalog, cfg Config) PostPaidItem {
	return excessItem("whatsapp_leads", "Leads WhatsApp", "lead", cfg.Metrics.LeadsPerMonth, cat.IncludedLeads, cat.LeadTiers)
}

func signaturesItem(cat *catalog.Catalog, cfg Config) PostPaidItem {
	volume := 0
	if cfg.Product.IncludesImob() {
		volume += cfg.Metrics.ClosingsPerMonth
	}
	if cfg.Product.IncludesLoc() {
		volume += cfg.Metrics.NewContractsPerMonth
	}
	return excessItem("signatures", "Assinaturas digitais", "assinatura", volume, cat.IncludedSignatures, cat.SignatureTiers)
}

// excessItem bills only usage above the included allowance.
func excessItem(key, label, unit string, actual, included int, tiers []catalog.Tier) PostPaidItem {
	additional := actual - included
	if additional < 0 {
		additional = 0
	}
	return newItem(key, label, unit, included, additional, tiers)
}

// volumeItem bills the whole quantity with no allowance.
func volumeItem(key, label, unit string, quantity int, tiers []catalog.Tier) PostPaidItem {
	if quantity < 0 {
		quantity = 0
	}
	return newItem(key, label, unit, 0, quantity, tiers)
}

func newItem(key, label, unit string, included, billable int, tiers []catalog.Tier) PostPaidItem {
	total := TieredCost(billable, tiers)
	avg := 0.0
	if billable > 0 {
		avg = total / float64(billable)
	}
	return PostPaidItem{
		Key:        key,
		Label:      label,
		Unit:       unit,
		Included:   included,
		Additional: billable,
		Total:      total,
		UnitAvg:    avg,
		Tiers:      TieredBreakdown(billable, tiers),
	}
}

func group(key, label string, items []PostPaidItem) PostPaidGroup {
	g := PostPaidGroup{Key: key, Label: label, Items: items}
	for _, it := range items {
		g.Subtotal += it.Total
	}
	return g
}

// PrepaidAmounts returns the upfront charge for additional users and contracts
// when the frequency allows prepayment (annual = 12 months, biennial = 24).
// The prepaid rate is the tiered cost times the prepaid discount, exact, with
// no commercial rounding.
func PrepaidAmounts(cat *catalog.Catalog, cfg Config) (users, contracts float64, err error) {
	cfg = cfg.normalized()
	if err := cfg.Validate(cat); err != nil {
		return 0, 0, err
	}
	terms, err := cat.FrequencyTerms(cfg.Frequency)
	if err != nil {
		return 0, 0, err
	}
	if terms.PrepayMonths == 0 {
		return 0, 0, nil
	}
	months := float64(terms.PrepayMonths)

	if cfg.PrepayUsers && cfg.Product.IncludesImob() {
		item, err := usersItem(cat, cfg)
		if err != nil {
			return 0, 0, err
		}
		users = item.Total * cat.PrepaidDiscount * months
	}
	if cfg.PrepayContracts && cfg.Product.IncludesLoc() {
		item, err := contractsItem(cat, cfg)
		if err != nil {
			return 0, 0, err
		}
		contracts = item.Total * cat.PrepaidDiscount * months
	}
	return users, contracts, nil
}

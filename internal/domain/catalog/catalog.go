package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// PlanTier identifies a plan level of a product line, ordered by capability.
type PlanTier string

const (
	PlanPrime PlanTier = "prime"
	PlanK     PlanTier = "k"
	PlanK2    PlanTier = "k2"
)

// PlanTiers lists the tiers in ascending capability order.
var PlanTiers = []PlanTier{PlanPrime, PlanK, PlanK2}

// ProductSelection identifies which product lines are active on a quote.
type ProductSelection string

const (
	ProductImob ProductSelection = "imob"
	ProductLoc  ProductSelection = "loc"
	ProductBoth ProductSelection = "both"
)

// IncludesImob reports whether the Imob line is part of the selection.
func (p ProductSelection) IncludesImob() bool { return p == ProductImob || p == ProductBoth }

// IncludesLoc reports whether the Locação line is part of the selection.
func (p ProductSelection) IncludesLoc() bool { return p == ProductLoc || p == ProductBoth }

// PaymentFrequency is the billing cycle chosen by the client.
type PaymentFrequency string

const (
	FrequencyMonthly   PaymentFrequency = "monthly"
	FrequencySemestral PaymentFrequency = "semestral"
	FrequencyAnnual    PaymentFrequency = "annual"
	FrequencyBiennial  PaymentFrequency = "biennial"
)

// Frequencies lists payment frequencies from shortest to longest commitment.
var Frequencies = []PaymentFrequency{FrequencyMonthly, FrequencySemestral, FrequencyAnnual, FrequencyBiennial}

// FrequencyTerms describes how a payment frequency prices and installs.
//
// Multiplier converts an annual list price into the monthly-equivalent charged
// at that frequency. PrepayMonths is how many months of additional users or
// contracts may be paid upfront (0 = prepayment unavailable).
type FrequencyTerms struct {
	Multiplier      float64 `json:"multiplier"`
	MaxInstallments int     `json:"max_installments"`
	PrepayMonths    int     `json:"prepay_months"`
}

// AddonKey identifies an optional add-on product.
type AddonKey string

const (
	AddonLeads        AddonKey = "leads"
	AddonInteligencia AddonKey = "inteligencia"
	AddonAssinatura   AddonKey = "assinatura"
	AddonPay          AddonKey = "pay"
	AddonSeguros      AddonKey = "seguros"
	AddonCash         AddonKey = "cash"
)

// AddonOrder is the display and line-item ordering of add-ons.
var AddonOrder = []AddonKey{AddonLeads, AddonInteligencia, AddonAssinatura, AddonPay, AddonSeguros, AddonCash}

// AddonAvailable reports whether an add-on can be sold for a product selection.
func AddonAvailable(key AddonKey, product ProductSelection) (bool, error) {
	switch key {
	case AddonLeads:
		return product.IncludesImob(), nil
	case AddonPay, AddonSeguros, AddonCash:
		return product.IncludesLoc(), nil
	case AddonInteligencia, AddonAssinatura:
		return true, nil
	default:
		return false, fmt.Errorf("%w: addon %q", ErrUnknownAddon, key)
	}
}

// AddonPricing carries the commercial terms of one add-on.
type AddonPricing struct {
	AnnualPrice    float64 `json:"annual_price"`
	Implementation float64 `json:"implementation"`
}

// ProductPricing carries per-tier annual prices and the implementation fee of
// a product line.
type ProductPricing struct {
	AnnualPrice    map[PlanTier]float64 `json:"annual_price"`
	Implementation float64              `json:"implementation"`
}

// Tier is one band of a piecewise rate schedule. From/To are 1-based unit
// positions, inclusive; To == 0 means the band is unbounded and must be last.
type Tier struct {
	From      int     `json:"from"`
	To        int     `json:"to"`
	UnitPrice float64 `json:"unit_price"`
}

// Unbounded reports whether the band has no upper limit.
func (t Tier) Unbounded() bool { return t.To == 0 }

// KomboType names a discounted bundle, or KomboNone for à-la-carte pricing.
type KomboType string

const (
	KomboNone      KomboType = "none"
	KomboElite     KomboType = "elite"
	KomboCore      KomboType = "core"
	KomboImobPro   KomboType = "imob_pro"
	KomboImobStart KomboType = "imob_start"
	KomboLocPro    KomboType = "loc_pro"
)

// KomboDef is the structural definition of a bundle. HasMaxAddons+MaxAddons
// cap the number of active add-ons; a cap of zero means the bundle forbids
// add-ons entirely.
type KomboDef struct {
	Type            KomboType        `json:"type"`
	DisplayName     string           `json:"display_name"`
	Discount        float64          `json:"discount"`
	Product         ProductSelection `json:"product"`
	RequiredAddons  []AddonKey       `json:"required_addons"`
	ForbiddenAddons []AddonKey       `json:"forbidden_addons"`
	HasMaxAddons    bool             `json:"has_max_addons"`
	MaxAddons       int              `json:"max_addons"`
	WaivedFees      []AddonKey       `json:"waived_fees"`
	WaivesProducts  bool             `json:"waives_products"`
}

// Requires reports whether the bundle requires the given add-on.
func (d KomboDef) Requires(key AddonKey) bool { return containsAddon(d.RequiredAddons, key) }

// Forbids reports whether the bundle forbids the given add-on.
func (d KomboDef) Forbids(key AddonKey) bool { return containsAddon(d.ForbiddenAddons, key) }

// WaivesFee reports whether the bundle waives the implementation fee of the
// given add-on.
func (d KomboDef) WaivesFee(key AddonKey) bool { return containsAddon(d.WaivedFees, key) }

func containsAddon(keys []AddonKey, key AddonKey) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// Catalog is the immutable pricing table. It is loaded once, injected into
// every calculation and never mutated at runtime.
type Catalog struct {
	Version string `json:"version"`

	Imob ProductPricing `json:"imob"`
	Loc  ProductPricing `json:"loc"`

	Addons map[AddonKey]AddonPricing `json:"addons"`

	Frequencies map[PaymentFrequency]FrequencyTerms `json:"frequencies"`

	// Included monthly quantities before variable billing starts.
	IncludedUsers      map[PlanTier]int `json:"included_users"`
	IncludedContracts  map[PlanTier]int `json:"included_contracts"`
	IncludedLeads      int              `json:"included_leads"`
	IncludedSignatures int              `json:"included_signatures"`

	// Rate schedules for the six variable-cost categories. User, contract and
	// boleto/split schedules vary by plan tier; lead and signature schedules
	// are flat.
	UserTiers        map[PlanTier][]Tier `json:"user_tiers"`
	ContractTiers    map[PlanTier][]Tier `json:"contract_tiers"`
	BoletoSplitTiers map[PlanTier][]Tier `json:"boleto_split_tiers"`
	LeadTiers        []Tier              `json:"lead_tiers"`
	SignatureTiers   []Tier              `json:"signature_tiers"`

	// Flat monthly commission earned per managed contract when Seguros is on.
	InsuranceCommission float64 `json:"insurance_commission"`

	// One-time premium services offered alongside the licenses.
	PremiumServices map[string]float64 `json:"premium_services"`

	// PrepaidDiscount is applied to tiered costs paid upfront (0.90 = 10% off).
	PrepaidDiscount float64 `json:"prepaid_discount"`

	Kombos []KomboDef `json:"kombos"`
}

// Errors raised on catalog/configuration mismatches. These indicate a code or
// catalog bug, never user input, so they fail loudly.
var (
	ErrUnknownPlanTier  = fmt.Errorf("unknown plan tier")
	ErrUnknownProduct   = fmt.Errorf("unknown product selection")
	ErrUnknownFrequency = fmt.Errorf("unknown payment frequency")
	ErrUnknownAddon     = fmt.Errorf("unknown addon")
	ErrUnknownKombo     = fmt.Errorf("unknown kombo")
)

// ValidProduct reports an error for product selections outside the enum.
func ValidProduct(p ProductSelection) error {
	switch p {
	case ProductImob, ProductLoc, ProductBoth:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownProduct, p)
}

// ValidPlanTier reports an error for tiers outside the enum.
func ValidPlanTier(t PlanTier) error {
	switch t {
	case PlanPrime, PlanK, PlanK2:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownPlanTier, t)
}

// FrequencyTerms resolves the terms for a frequency, failing on unknown values.
func (c *Catalog) FrequencyTerms(f PaymentFrequency) (FrequencyTerms, error) {
	terms, ok := c.Frequencies[f]
	if !ok {
		return FrequencyTerms{}, fmt.Errorf("%w: %q", ErrUnknownFrequency, f)
	}
	return terms, nil
}

// ProductAnnualPrice resolves the annual list price of a product line at a tier.
func (c *Catalog) ProductAnnualPrice(product ProductSelection, tier PlanTier) (float64, error) {
	var pricing ProductPricing
	switch product {
	case ProductImob:
		pricing = c.Imob
	case ProductLoc:
		pricing = c.Loc
	default:
		return 0, fmt.Errorf("%w: %q is not a single product line", ErrUnknownProduct, product)
	}
	price, ok := pricing.AnnualPrice[tier]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlanTier, tier)
	}
	return price, nil
}

// AddonPricing resolves an add-on's commercial terms.
func (c *Catalog) AddonPricing(key AddonKey) (AddonPricing, error) {
	pricing, ok := c.Addons[key]
	if !ok {
		return AddonPricing{}, fmt.Errorf("%w: %q", ErrUnknownAddon, key)
	}
	return pricing, nil
}

// Kombo resolves a bundle definition by type.
func (c *Catalog) Kombo(t KomboType) (KomboDef, error) {
	for _, d := range c.Kombos {
		if d.Type == t {
			return d, nil
		}
	}
	return KomboDef{}, fmt.Errorf("%w: %q", ErrUnknownKombo, t)
}

// UserTiersFor resolves the additional-user schedule for a tier.
func (c *Catalog) UserTiersFor(tier PlanTier) ([]Tier, error) {
	ts, ok := c.UserTiers[tier]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlanTier, tier)
	}
	return ts, nil
}

// ContractTiersFor resolves the additional-contract schedule for a tier.
func (c *Catalog) ContractTiersFor(tier PlanTier) ([]Tier, error) {
	ts, ok := c.ContractTiers[tier]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlanTier, tier)
	}
	return ts, nil
}

// BoletoSplitTiersFor resolves the boleto/split schedule for a tier.
func (c *Catalog) BoletoSplitTiersFor(tier PlanTier) ([]Tier, error) {
	ts, ok := c.BoletoSplitTiers[tier]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlanTier, tier)
	}
	return ts, nil
}

// IncludedUsersFor resolves the free user allowance for a tier.
func (c *Catalog) IncludedUsersFor(tier PlanTier) (int, error) {
	n, ok := c.IncludedUsers[tier]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlanTier, tier)
	}
	return n, nil
}

// IncludedContractsFor resolves the free contract allowance for a tier.
func (c *Catalog) IncludedContractsFor(tier PlanTier) (int, error) {
	n, ok := c.IncludedContracts[tier]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPlanTier, tier)
	}
	return n, nil
}

// Hash returns the SHA-256 of the catalog's JSON form. Downstream caches
// (e.g. rendered reference-price PDFs) key on it and must invalidate when it
// changes. encoding/json sorts map keys, so the encoding is deterministic.
func (c *Catalog) Hash() string {
	b, err := json.Marshal(c)
	if err != nil {
		// Catalog is a plain data struct; marshal cannot fail for valid catalogs.
		panic(fmt.Sprintf("catalog: hash: %v", err))
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

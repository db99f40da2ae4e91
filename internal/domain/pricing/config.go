package pricing

import (
	"fmt"

	"imobtech_xpto/internal/domain/catalog"
)

// LeadChannelKind discriminates how inbound leads are handled.
type LeadChannelKind string

const (
	LeadChannelNone       LeadChannelKind = "none"
	LeadChannelWhatsApp   LeadChannelKind = "whatsapp"
	LeadChannelExternalAI LeadChannelKind = "external_ai"
)

// LeadChannel is a tagged value: none, WhatsApp, or an external AI identified
// by name. WhatsApp and external AI are mutually exclusive by construction;
// there is no way to build a LeadChannel with both.
type LeadChannel struct {
	kind LeadChannelKind
	name string
}

func NoLeadChannel() LeadChannel { return LeadChannel{kind: LeadChannelNone} }
func WhatsAppLeads() LeadChannel { return LeadChannel{kind: LeadChannelWhatsApp} }
func ExternalAILeads(name string) LeadChannel {
	return LeadChannel{kind: LeadChannelExternalAI, name: name}
}

func (l LeadChannel) Kind() LeadChannelKind {
	if l.kind == "" {
		return LeadChannelNone
	}
	return l.kind
}

// ExternalAIName returns the AI vendor name, empty unless Kind is external AI.
func (l LeadChannel) ExternalAIName() string { return l.name }

// ChargedFee is a fee the client passes through to tenants or owners.
type ChargedFee struct {
	Enabled bool
	Amount  float64
}

// Metrics is the client's usage profile entered by the salesperson. Numeric
// fields may arrive transiently empty from the form; they are coerced to zero
// before calculation.
type Metrics struct {
	Users                int
	ClosingsPerMonth     int
	LeadsPerMonth        int
	ContractsManaged     int
	NewContractsPerMonth int

	BoletoCharge ChargedFee
	SplitCharge  ChargedFee

	LeadChannel LeadChannel
}

// Normalized clamps user-entered numbers to zero. Bad input in a sales tool
// yields a harmless zero, never an error.
func (m Metrics) Normalized() Metrics {
	m.Users = clampCount(m.Users)
	m.ClosingsPerMonth = clampCount(m.ClosingsPerMonth)
	m.LeadsPerMonth = clampCount(m.LeadsPerMonth)
	m.ContractsManaged = clampCount(m.ContractsManaged)
	m.NewContractsPerMonth = clampCount(m.NewContractsPerMonth)
	if m.BoletoCharge.Amount < 0 {
		m.BoletoCharge.Amount = 0
	}
	if m.SplitCharge.Amount < 0 {
		m.SplitCharge.Amount = 0
	}
	return m
}

func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// AddonSet holds the enabled flags of the add-on catalog.
type AddonSet map[catalog.AddonKey]bool

// Enabled reports whether the add-on flag is set, regardless of availability.
func (s AddonSet) Enabled(key catalog.AddonKey) bool { return s[key] }

// ActiveFor reports whether the add-on is both enabled and available for the
// product selection. Stale flags left over from a previous product selection
// never count as active.
func (s AddonSet) ActiveFor(key catalog.AddonKey, product catalog.ProductSelection) (bool, error) {
	if !s[key] {
		return false, nil
	}
	return catalog.AddonAvailable(key, product)
}

// CountActive counts active add-ons for the product selection.
func (s AddonSet) CountActive(product catalog.ProductSelection) (int, error) {
	n := 0
	for _, key := range catalog.AddonOrder {
		active, err := s.ActiveFor(key, product)
		if err != nil {
			return 0, err
		}
		if active {
			n++
		}
	}
	return n, nil
}

// Clone returns an independent copy of the set.
func (s AddonSet) Clone() AddonSet {
	out := make(AddonSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Config is the full quote configuration. All pricing functions are pure over
// (catalog, Config).
type Config struct {
	Product   catalog.ProductSelection
	PlanImob  catalog.PlanTier
	PlanLoc   catalog.PlanTier
	Addons    AddonSet
	Frequency catalog.PaymentFrequency
	Metrics   Metrics

	PrepayUsers     bool
	PrepayContracts bool
}

// Validate fails loudly on enum values outside the catalog. These are
// code/catalog mismatches, not user mistakes.
func (c Config) Validate(cat *catalog.Catalog) error {
	if err := catalog.ValidProduct(c.Product); err != nil {
		return err
	}
	if _, err := cat.FrequencyTerms(c.Frequency); err != nil {
		return err
	}
	if c.Product.IncludesImob() {
		if err := catalog.ValidPlanTier(c.PlanImob); err != nil {
			return fmt.Errorf("imob: %w", err)
		}
	}
	if c.Product.IncludesLoc() {
		if err := catalog.ValidPlanTier(c.PlanLoc); err != nil {
			return fmt.Errorf("loc: %w", err)
		}
	}
	for key := range c.Addons {
		if _, err := cat.AddonPricing(key); err != nil {
			return err
		}
	}
	return nil
}

// normalized returns the config with metrics coerced and the addon set
// guaranteed non-nil.
func (c Config) normalized() Config {
	c.Metrics = c.Metrics.Normalized()
	if c.Addons == nil {
		c.Addons = AddonSet{}
	}
	return c
}

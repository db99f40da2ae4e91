package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"imobtech_xpto/internal/domain/catalog"
	"imobtech_xpto/internal/domain/pricing"
)

var ErrInvalidLeadChannel = errors.New("invalid lead channel")

// FlexCount is a count field tolerant of form input: it accepts a JSON
// number, a numeric string, an empty string or null, coercing anything
// non-numeric or negative to zero. Blocking a salesperson on a half-typed
// field is worse than a harmless zero.
type FlexCount int

func (f *FlexCount) UnmarshalJSON(b []byte) error {
	*f = FlexCount(flexParse(b))
	return nil
}

// FlexAmount is the money analogue of FlexCount.
type FlexAmount float64

func (f *FlexAmount) UnmarshalJSON(b []byte) error {
	*f = FlexAmount(flexParse(b))
	return nil
}

func flexParse(b []byte) float64 {
	s := strings.TrimSpace(string(bytes.Trim(bytes.TrimSpace(b), `"`)))
	if s == "" || s == "null" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// MetricsRequest mirrors the usage form.
type MetricsRequest struct {
	Users                FlexCount `json:"users"`
	ClosingsPerMonth     FlexCount `json:"closings_per_month"`
	LeadsPerMonth        FlexCount `json:"leads_per_month"`
	ContractsManaged     FlexCount `json:"contracts_managed"`
	NewContractsPerMonth FlexCount `json:"new_contracts_per_month"`

	BoletoChargeEnabled bool       `json:"boleto_charge_enabled"`
	BoletoChargeAmount  FlexAmount `json:"boleto_charge_amount"`
	SplitChargeEnabled  bool       `json:"split_charge_enabled"`
	SplitChargeAmount   FlexAmount `json:"split_charge_amount"`

	// lead_channel: "", "none", "whatsapp" or "external_ai" (with
	// external_ai_name). WhatsApp and external AI are mutually exclusive.
	LeadChannel    string `json:"lead_channel"`
	ExternalAIName string `json:"external_ai_name"`
}

// QuoteRequest is the calculator payload sent by the sales UI.
type QuoteRequest struct {
	Product   string         `json:"product" binding:"required"`
	PlanImob  string         `json:"plan_imob"`
	PlanLoc   string         `json:"plan_loc"`
	Frequency string         `json:"frequency" binding:"required"`
	Addons    []string       `json:"addons"`
	Metrics   MetricsRequest `json:"metrics"`

	PrepayUsers     bool `json:"prepay_users"`
	PrepayContracts bool `json:"prepay_contracts"`
}

// ToConfig translates the payload into the domain configuration. Enum values
// pass through untouched; the pricing core rejects unknown ones loudly.
func (r QuoteRequest) ToConfig() (pricing.Config, error) {
	channel, err := r.Metrics.leadChannel()
	if err != nil {
		return pricing.Config{}, err
	}

	addons := pricing.AddonSet{}
	for _, key := range r.Addons {
		addons[catalog.AddonKey(strings.TrimSpace(key))] = true
	}

	return pricing.Config{
		Product:   catalog.ProductSelection(strings.TrimSpace(r.Product)),
		PlanImob:  catalog.PlanTier(strings.TrimSpace(r.PlanImob)),
		PlanLoc:   catalog.PlanTier(strings.TrimSpace(r.PlanLoc)),
		Addons:    addons,
		Frequency: catalog.PaymentFrequency(strings.TrimSpace(r.Frequency)),
		Metrics: pricing.Metrics{
			Users:                int(r.Metrics.Users),
			ClosingsPerMonth:     int(r.Metrics.ClosingsPerMonth),
			LeadsPerMonth:        int(r.Metrics.LeadsPerMonth),
			ContractsManaged:     int(r.Metrics.ContractsManaged),
			NewContractsPerMonth: int(r.Metrics.NewContractsPerMonth),
			BoletoCharge: pricing.ChargedFee{
				Enabled: r.Metrics.BoletoChargeEnabled,
				Amount:  float64(r.Metrics.BoletoChargeAmount),
			},
			SplitCharge: pricing.ChargedFee{
				Enabled: r.Metrics.SplitChargeEnabled,
				Amount:  float64(r.Metrics.SplitChargeAmount),
			},
			LeadChannel: channel,
		},
		PrepayUsers:     r.PrepayUsers,
		PrepayContracts: r.PrepayContracts,
	}, nil
}

func (m MetricsRequest) leadChannel() (pricing.LeadChannel, error) {
	switch strings.ToLower(strings.TrimSpace(m.LeadChannel)) {
	case "", "none":
		return pricing.NoLeadChannel(), nil
	case "whatsapp":
		return pricing.WhatsAppLeads(), nil
	case "external_ai":
		return pricing.ExternalAILeads(strings.TrimSpace(m.ExternalAIName)), nil
	}
	return pricing.LeadChannel{}, ErrInvalidLeadChannel
}

var (
	_ json.Unmarshaler = (*FlexCount)(nil)
	_ json.Unmarshaler = (*FlexAmount)(nil)
)

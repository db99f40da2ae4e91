package catalog

// Default returns the active pricing table. Prices are annual list prices in
// BRL; variable rates are monthly unit prices.
//
// The table is versioned: any commercial change bumps Version so downstream
// artifacts keyed on Hash() invalidate.
func Default() *Catalog {
	return &Catalog{
		Version: "2026-08",

		Imob: ProductPricing{
			AnnualPrice: map[PlanTier]float64{
				PlanPrime: 2988,
				PlanK:     5388,
				PlanK2:    8988,
			},
			Implementation: 1497,
		},
		Loc: ProductPricing{
			AnnualPrice: map[PlanTier]float64{
				PlanPrime: 2748,
				PlanK:     4788,
				PlanK2:    7788,
			},
			Implementation: 1497,
		},

		Addons: map[AddonKey]AddonPricing{
			AddonLeads:        {AnnualPrice: 2388, Implementation: 397},
			AddonInteligencia: {AnnualPrice: 1788, Implementation: 297},
			AddonAssinatura:   {AnnualPrice: 1188, Implementation: 197},
			AddonPay:          {AnnualPrice: 1548, Implementation: 497},
			AddonSeguros:      {AnnualPrice: 948, Implementation: 0},
			AddonCash:         {AnnualPrice: 708, Implementation: 0},
		},

		Frequencies: map[PaymentFrequency]FrequencyTerms{
			FrequencyMonthly:   {Multiplier: 0.11, MaxInstallments: 1, PrepayMonths: 0},
			FrequencySemestral: {Multiplier: 0.098, MaxInstallments: 6, PrepayMonths: 0},
			FrequencyAnnual:    {Multiplier: 1.0 / 12, MaxInstallments: 12, PrepayMonths: 12},
			FrequencyBiennial:  {Multiplier: 0.075, MaxInstallments: 24, PrepayMonths: 24},
		},

		IncludedUsers: map[PlanTier]int{
			PlanPrime: 2,
			PlanK:     7,
			PlanK2:    15,
		},
		IncludedContracts: map[PlanTier]int{
			PlanPrime: 50,
			PlanK:     100,
			PlanK2:    200,
		},
		IncludedLeads:      100,
		IncludedSignatures: 10,

		UserTiers: map[PlanTier][]Tier{
			PlanPrime: {
				{From: 1, To: 5, UnitPrice: 39},
				{From: 6, To: 15, UnitPrice: 35},
				{From: 16, To: 0, UnitPrice: 29},
			},
			PlanK: {
				{From: 1, To: 5, UnitPrice: 35},
				{From: 6, To: 15, UnitPrice: 31},
				{From: 16, To: 0, UnitPrice: 25},
			},
			PlanK2: {
				{From: 1, To: 5, UnitPrice: 31},
				{From: 6, To: 15, UnitPrice: 27},
				{From: 16, To: 0, UnitPrice: 21},
			},
		},
		ContractTiers: map[PlanTier][]Tier{
			PlanPrime: {
				{From: 1, To: 100, UnitPrice: 1.40},
				{From: 101, To: 300, UnitPrice: 1.20},
				{From: 301, To: 0, UnitPrice: 0.95},
			},
			PlanK: {
				{From: 1, To: 100, UnitPrice: 1.20},
				{From: 101, To: 300, UnitPrice: 1.00},
				{From: 301, To: 0, UnitPrice: 0.80},
			},
			PlanK2: {
				{From: 1, To: 100, UnitPrice: 1.00},
				{From: 101, To: 300, UnitPrice: 0.85},
				{From: 301, To: 0, UnitPrice: 0.65},
			},
		},
		BoletoSplitTiers: map[PlanTier][]Tier{
			PlanPrime: {
				{From: 1, To: 100, UnitPrice: 2.90},
				{From: 101, To: 300, UnitPrice: 2.50},
				{From: 301, To: 0, UnitPrice: 2.10},
			},
			PlanK: {
				{From: 1, To: 100, UnitPrice: 2.50},
				{From: 101, To: 300, UnitPrice: 2.10},
				{From: 301, To: 0, UnitPrice: 1.80},
			},
			PlanK2: {
				{From: 1, To: 100, UnitPrice: 2.10},
				{From: 101, To: 300, UnitPrice: 1.80},
				{From: 301, To: 0, UnitPrice: 1.50},
			},
		},
		LeadTiers: []Tier{
			{From: 1, To: 100, UnitPrice: 1.90},
			{From: 101, To: 300, UnitPrice: 1.60},
			{From: 301, To: 600, UnitPrice: 1.30},
			{From: 601, To: 0, UnitPrice: 1.00},
		},
		SignatureTiers: []Tier{
			{From: 1, To: 20, UnitPrice: 4.50},
			{From: 21, To: 50, UnitPrice: 3.80},
			{From: 51, To: 0, UnitPrice: 3.20},
		},

		InsuranceCommission: 8,

		PremiumServices: map[string]float64{
			"implantacao_premium":  2990,
			"treinamento_avancado": 1490,
		},

		PrepaidDiscount: 0.90,

		Kombos: []KomboDef{
			{
				Type:           KomboElite,
				DisplayName:    "Kombo Elite",
				Discount:       0.20,
				Product:        ProductBoth,
				RequiredAddons: []AddonKey{AddonLeads, AddonInteligencia, AddonAssinatura, AddonPay, AddonSeguros},
				WaivedFees:     []AddonKey{AddonLeads, AddonInteligencia, AddonAssinatura, AddonPay, AddonSeguros},
				WaivesProducts: true,
			},
			{
				Type:           KomboCore,
				DisplayName:    "Kombo Core",
				Discount:       0,
				Product:        ProductBoth,
				HasMaxAddons:   true,
				MaxAddons:      0,
				WaivesProducts: true,
			},
			{
				Type:           KomboImobPro,
				DisplayName:    "Kombo Imob Pro",
				Discount:       0.15,
				Product:        ProductImob,
				RequiredAddons: []AddonKey{AddonLeads, AddonInteligencia, AddonAssinatura},
				WaivedFees:     []AddonKey{AddonLeads, AddonInteligencia, AddonAssinatura},
			},
			{
				Type:            KomboImobStart,
				DisplayName:     "Kombo Imob Start",
				Discount:        0.10,
				Product:         ProductImob,
				RequiredAddons:  []AddonKey{AddonLeads},
				ForbiddenAddons: []AddonKey{AddonInteligencia, AddonAssinatura},
				WaivedFees:      []AddonKey{AddonLeads},
			},
			{
				Type:            KomboLocPro,
				DisplayName:     "Kombo Locação Pro",
				Discount:        0.15,
				Product:         ProductLoc,
				RequiredAddons:  []AddonKey{AddonPay, AddonAssinatura},
				ForbiddenAddons: []AddonKey{AddonSeguros},
				WaivedFees:      []AddonKey{AddonPay},
			},
		},
	}
}

package response

import "imobtech_xpto/internal/domain/catalog"

// CatalogResponse identifies the active pricing table. Hash is the cache key
// for downstream artifacts rendered from this catalog.
type CatalogResponse struct {
	Version         string                                              `json:"version"`
	Hash            string                                              `json:"hash"`
	Frequencies     map[catalog.PaymentFrequency]catalog.FrequencyTerms `json:"frequencies"`
	PremiumServices map[string]float64                                  `json:"premium_services"`
}

func FromCatalog(cat *catalog.Catalog) CatalogResponse {
	return CatalogResponse{
		Version:         cat.Version,
		Hash:            cat.Hash(),
		Frequencies:     cat.Frequencies,
		PremiumServices: cat.PremiumServices,
	}
}

package pricing

import "imobtech_xpto/internal/domain/catalog"

// DetectKombo classifies the current configuration into at most one bundle.
//
// Rules run in priority order; the first structural match wins:
//  1. both products + all Elite add-ons      -> Elite
//  2. both products + zero active add-ons    -> Core
//  3. imob + all Imob Pro add-ons            -> Imob Pro
//  4. imob + Imob Start add-ons, none of its forbidden ones -> Imob Start
//  5. loc + Locação Pro add-ons, none of its forbidden ones -> Locação Pro
//  6. otherwise                              -> none
//
// Detection is side-effect free and recomputed on every state change.
func DetectKombo(cat *catalog.Catalog, cfg Config) (catalog.KomboType, error) {
	cfg = cfg.normalized()
	if err := cfg.Validate(cat); err != nil {
		return catalog.KomboNone, err
	}
	for _, def := range cat.Kombos {
		match, err := komboMatches(def, cfg)
		if err != nil {
			return catalog.KomboNone, err
		}
		if match {
			return def.Type, nil
		}
	}
	return catalog.KomboNone, nil
}

func komboMatches(def catalog.KomboDef, cfg Config) (bool, error) {
	if cfg.Product != def.Product {
		return false, nil
	}
	active, err := cfg.Addons.CountActive(cfg.Product)
	if err != nil {
		return false, err
	}
	if def.HasMaxAddons && active > def.MaxAddons {
		return false, nil
	}
	for _, key := range def.RequiredAddons {
		on, err := cfg.Addons.ActiveFor(key, cfg.Product)
		if err != nil {
			return false, err
		}
		if !on {
			return false, nil
		}
	}
	for _, key := range def.ForbiddenAddons {
		on, err := cfg.Addons.ActiveFor(key, cfg.Product)
		if err != nil {
			return false, err
		}
		if on {
			return false, nil
		}
	}
	return true, nil
}

// ApplyKombo force-sets the configuration to a bundle chosen directly by the
// salesperson: required add-ons are switched on, forbidden ones off, and a
// zero add-on cap clears the whole set. The product selection follows the
// bundle. Returns the rewritten configuration.
func ApplyKombo(cat *catalog.Catalog, cfg Config, t catalog.KomboType) (Config, error) {
	if t == catalog.KomboNone {
		return cfg, nil
	}
	def, err := cat.Kombo(t)
	if err != nil {
		return Config{}, err
	}
	out := cfg
	out.Product = def.Product
	out.Addons = cfg.Addons.Clone()
	if out.Addons == nil {
		out.Addons = AddonSet{}
	}
	if def.HasMaxAddons && def.MaxAddons == 0 {
		for _, key := range catalog.AddonOrder {
			out.Addons[key] = false
		}
		return out, nil
	}
	for _, key := range def.RequiredAddons {
		out.Addons[key] = true
	}
	for _, key := range def.ForbiddenAddons {
		out.Addons[key] = false
	}
	return out, nil
}

// Copyright Hadayhoc Technology, 2026. All rights reserved.

package invoke

import "github.com/hadayhoc-tech/nanglucso/pkg/types"

// Catalog is the static, ordered list of models eligible for an invocation
// attempt. Exactly one entry is the default; the remaining entries form the
// fallback chain in catalog order.
var Catalog = []types.ModelCandidate{
	{
		ID:          "gemini-2.5-flash",
		DisplayName: "Gemini 2.5 Flash",
		Description: "Default - fast and stable",
		Default:     true,
	},
	{
		ID:          "gemini-2.5-pro",
		DisplayName: "Gemini 2.5 Pro",
		Description: "High quality, handles long documents well",
		Default:     false,
	},
	{
		ID:          "gemini-2.0-flash",
		DisplayName: "Gemini 2.0 Flash",
		Description: "Stable fallback option",
		Default:     false,
	},
}

// DefaultModelID returns the id of the catalog's default candidate.
func DefaultModelID() string {
	for _, c := range Catalog {
		if c.Default {
			return c.ID
		}
	}
	return Catalog[0].ID
}

// InCatalog reports whether id names a catalog candidate.
func InCatalog(id string) bool {
	for _, c := range Catalog {
		if c.ID == id {
			return true
		}
	}
	return false
}

// TrialOrder computes the sequence in which candidates are attempted for one
// run. When preferredID names a catalog entry it moves to the front; the
// remaining entries keep catalog order. An empty or unknown preferredID
// leaves the catalog order untouched. The result is always a permutation of
// the full catalog.
func TrialOrder(catalog []types.ModelCandidate, preferredID string) []string {
	ids := make([]string, 0, len(catalog))
	for _, c := range catalog {
		ids = append(ids, c.ID)
	}

	found := false
	for _, id := range ids {
		if id == preferredID {
			found = true
			break
		}
	}
	if !found || ids[0] == preferredID {
		return ids
	}

	order := make([]string, 0, len(ids))
	order = append(order, preferredID)
	for _, id := range ids {
		if id != preferredID {
			order = append(order, id)
		}
	}
	return order
}

package filter

import (
	"slices"
	"sort"
	"strings"

	"storefront-service/internal/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterSuppliers returns the suppliers matching every constraint in the
// state. The search query is matched against the business name, the
// description and the domain name. The input slice is never mutated.
func FilterSuppliers(suppliers []model.Supplier, s State) []model.Supplier {
	out := make([]model.Supplier, 0, len(suppliers))
	for _, sup := range suppliers {
		if s.SearchQuery != "" &&
			!containsFold(sup.BusinessName, s.SearchQuery) &&
			!containsFold(sup.Description, s.SearchQuery) &&
			!containsFold(sup.Domain.Name, s.SearchQuery) {
			continue
		}
		if s.SupplierType != "" && s.SupplierType != TypeAll &&
			!strings.EqualFold(s.SupplierType, sup.Type) {
			continue
		}
		out = append(out, sup)
	}
	return out
}

// SortSuppliers returns a new slice ordered by the given sort option.
// Unknown options preserve the input order. All sorts are stable.
func SortSuppliers(suppliers []model.Supplier, sortBy string) []model.Supplier {
	out := slices.Clone(suppliers)

	switch sortBy {
	case SortAlphabetical:
		coll := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			return coll.CompareString(out[i].BusinessName, out[j].BusinessName) < 0
		})
	case SortMostRecent:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}

	return out
}

package filter

import (
	"slices"
	"sort"

	"storefront-service/internal/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterProducts returns the products matching every constraint in the
// state. The input slice is never mutated.
func FilterProducts(products []model.Product, s State) []model.Product {
	minPrice, hasMin := parseBound(s.MinPrice)
	maxPrice, hasMax := parseBound(s.MaxPrice)

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if s.SearchQuery != "" && !containsFold(p.Name, s.SearchQuery) {
			continue
		}
		if s.CategoryID != nil {
			if p.CategoryID == nil || *p.CategoryID != *s.CategoryID {
				continue
			}
		}
		if hasMin && p.Price < minPrice {
			continue
		}
		if hasMax && p.Price > maxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SortProducts returns a new slice ordered by the given sort option.
// Unknown options, including "Popularity", preserve the input order.
// All sorts are stable.
func SortProducts(products []model.Product, sortBy string) []model.Product {
	out := slices.Clone(products)

	switch sortBy {
	case SortPriceLowHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortPriceHighLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	case SortAlphabetical:
		coll := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			return coll.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortMostRecent:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}

	return out
}

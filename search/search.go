// Package search filters and sorts catalog snapshots for the search and
// browse pages. Everything here is a pure function of its inputs.
package search

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// MinQueryLength is the shortest query that produces any results.
const MinQueryLength = 2

var ErrUnknownSortKey = errors.New("unknown sort key")

// Match returns the products whose name, description, category or tags
// contain query, ignoring case. Queries shorter than MinQueryLength match
// nothing. Catalog order is kept.
func Match(products []models.Product, query string) []models.Product {
	q := strings.TrimSpace(query)
	out := make([]models.Product, 0)
	if utf8.RuneCountInString(q) < MinQueryLength {
		return out
	}
	q = strings.ToLower(q)
	for _, p := range products {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p models.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(string(p.Category)), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// Apply narrows products by category and price range, then sorts them.
func Apply(products []models.Product, f models.Filters) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && f.Category != models.CategoryAll && p.Category != f.Category {
			continue
		}
		if f.PriceRange != nil && !f.PriceRange.Contains(p.EffectivePrice()) {
			continue
		}
		out = append(out, p)
	}
	Sort(out, f.Sort)
	return out
}

// Search is Match on f.Query followed by Apply.
func Search(products []models.Product, f models.Filters) []models.Product {
	return Apply(Match(products, f.Query), f)
}

// Sort orders products in place. The sort is stable, so "relevance" and ties
// keep their incoming order.
func Sort(products []models.Product, key models.SortKey) {
	switch key {
	case models.SortNameAsc, models.SortNameDesc:
		c := collate.New(language.English)
		desc := key == models.SortNameDesc
		slices.SortStableFunc(products, func(a, b models.Product) int {
			r := c.CompareString(a.Name, b.Name)
			if desc {
				return -r
			}
			return r
		})
	case models.SortPriceAsc:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return comparePrice(a.EffectivePrice(), b.EffectivePrice())
		})
	case models.SortPriceDesc:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			return comparePrice(b.EffectivePrice(), a.EffectivePrice())
		})
	case models.SortFeatured:
		slices.SortStableFunc(products, func(a, b models.Product) int {
			switch {
			case a.Featured == b.Featured:
				return 0
			case a.Featured:
				return -1
			default:
				return 1
			}
		})
	}
}

func comparePrice(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// ParseSortKey accepts the canonical keys plus the short forms used by the
// search page ("name", "price-low", "price-high"). An empty string yields def.
func ParseSortKey(s string, def models.SortKey) (models.SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, nil
	case "relevance":
		return models.SortRelevance, nil
	case "name", "name-asc":
		return models.SortNameAsc, nil
	case "name-desc":
		return models.SortNameDesc, nil
	case "price-low", "price-asc":
		return models.SortPriceAsc, nil
	case "price-high", "price-desc":
		return models.SortPriceDesc, nil
	case "featured":
		return models.SortFeatured, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/search"
	"github.com/mwakidenis/FarmFresh-Poultry-Products/validation"
)

// ParseFilters reads category, minPrice, maxPrice and sortBy from the query
// string. q is read as well when present. Bad values come back as
// validation.Errors keyed by parameter name.
func ParseFilters(c *gin.Context, defaultSort models.SortKey) (models.Filters, error) {
	errs := validation.Errors{}
	f := models.Filters{
		Query:    strings.TrimSpace(c.Query("q")),
		Category: models.CategoryID(strings.ToLower(strings.TrimSpace(c.Query("category")))),
	}

	if f.Category != "" && f.Category != models.CategoryAll && !models.ValidCategory(f.Category) {
		errs["category"] = "Unknown category"
	}

	sortKey, err := search.ParseSortKey(c.Query("sortBy"), defaultSort)
	if err != nil {
		errs["sortBy"] = "Unknown sort option"
	}
	f.Sort = sortKey

	minPrice, minSet, minOK := parsePrice(c.Query("minPrice"))
	maxPrice, maxSet, maxOK := parsePrice(c.Query("maxPrice"))
	if !minOK {
		errs["minPrice"] = "Must be a non-negative number"
	}
	if !maxOK {
		errs["maxPrice"] = "Must be a non-negative number"
	}
	if minOK && maxOK && (minSet || maxSet) {
		r := models.PriceRange{Min: 0, Max: maxPrice}
		if minSet {
			r.Min = minPrice
		}
		if !maxSet {
			r.Max = 1e12
		}
		if r.Min > r.Max {
			errs["minPrice"] = "Must not exceed maxPrice"
		}
		f.PriceRange = &r
	}

	return f, errs.Err()
}

// parsePrice returns the value, whether it was given, and whether it is valid.
func parsePrice(raw string) (float64, bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0, true, false
	}
	return v, true, true
}

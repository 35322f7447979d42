package models

type SortKey string

const (
	SortRelevance SortKey = "relevance"
	SortNameAsc   SortKey = "name-asc"
	SortNameDesc  SortKey = "name-desc"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortFeatured  SortKey = "featured"
)

// PriceRange bounds are inclusive and compared against the effective price.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// Filters is the search and browse state. It is recomputed per request and never stored.
type Filters struct {
	Query      string      `json:"query,omitempty"`
	Category   CategoryID  `json:"category,omitempty"`
	PriceRange *PriceRange `json:"priceRange,omitempty"`
	Sort       SortKey     `json:"sortBy,omitempty"`
}

// SearchResult is the payload of the search endpoint.
type SearchResult struct {
	Query    string    `json:"query"`
	Filters  Filters   `json:"filters"`
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}

// ProductDetail is a product plus a few others from its category.
type ProductDetail struct {
	Product
	Related []Product `json:"related"`
}

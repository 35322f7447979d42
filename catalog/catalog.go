// Package catalog is the read-only product and category store behind the
// storefront.
package catalog

import (
	_ "embed"
	"fmt"

	"github.com/mwakidenis/FarmFresh-Poultry-Products/models"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var catalogYAML []byte

type document struct {
	Categories []models.Category `yaml:"categories"`
	Products   []models.Product  `yaml:"products"`
}

// Store holds the static catalog. It is safe for concurrent use because
// nothing mutates it after construction; every accessor hands out copies.
type Store struct {
	products   []models.Product
	byID       map[string]int
	categories []models.Category
}

// Load builds the store from the embedded catalog data.
func Load() (*Store, error) {
	return Parse(catalogYAML)
}

// Parse builds a store from a YAML document with categories and products.
func Parse(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(doc.Products, doc.Categories)
}

func New(products []models.Product, categories []models.Category) (*Store, error) {
	s := &Store{
		products:   make([]models.Product, 0, len(products)),
		byID:       make(map[string]int, len(products)),
		categories: make([]models.Category, 0, len(categories)),
	}

	seenCategory := make(map[models.CategoryID]bool, len(categories))
	for _, c := range categories {
		if !models.ValidCategory(c.ID) {
			return nil, fmt.Errorf("unknown category %q", c.ID)
		}
		if seenCategory[c.ID] {
			return nil, fmt.Errorf("duplicate category %q", c.ID)
		}
		seenCategory[c.ID] = true
		s.categories = append(s.categories, c)
	}

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		s.byID[p.ID] = len(s.products)
		s.products = append(s.products, p)
	}
	return s, nil
}

// All returns every product in catalog order.
func (s *Store) All() []models.Product {
	return cloneProducts(s.products)
}

// ByID returns the product with the given id. A missing id is reported with
// ok == false and is not an error.
func (s *Store) ByID(id string) (models.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Product{}, false
	}
	return cloneProduct(s.products[i]), true
}

func (s *Store) ByCategory(category models.CategoryID) []models.Product {
	out := make([]models.Product, 0)
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, cloneProduct(p))
		}
	}
	return out
}

func (s *Store) Featured() []models.Product {
	out := make([]models.Product, 0)
	for _, p := range s.products {
		if p.Featured {
			out = append(out, cloneProduct(p))
		}
	}
	return out
}

// Related lists up to limit other products from the same category.
func (s *Store) Related(id string, limit int) []models.Product {
	out := make([]models.Product, 0, limit)
	i, ok := s.byID[id]
	if !ok || limit <= 0 {
		return out
	}
	category := s.products[i].Category
	for _, p := range s.products {
		if len(out) == limit {
			break
		}
		if p.ID != id && p.Category == category {
			out = append(out, cloneProduct(p))
		}
	}
	return out
}

func (s *Store) Categories() []models.Category {
	return append([]models.Category(nil), s.categories...)
}

func (s *Store) CategoryByID(id models.CategoryID) (models.Category, bool) {
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

// Summaries returns every category with its product count.
func (s *Store) Summaries() []models.CategorySummary {
	counts := make(map[models.CategoryID]int, len(s.categories))
	for _, p := range s.products {
		counts[p.Category]++
	}
	out := make([]models.CategorySummary, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, models.CategorySummary{Category: c, ProductCount: counts[c.ID]})
	}
	return out
}

func cloneProducts(src []models.Product) []models.Product {
	out := make([]models.Product, len(src))
	for i, p := range src {
		out[i] = cloneProduct(p)
	}
	return out
}

// cloneProduct copies the slices and the discount pointer so callers cannot
// reach into the store's data.
func cloneProduct(p models.Product) models.Product {
	p.Images = append([]string(nil), p.Images...)
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	if p.DiscountPrice != nil {
		d := *p.DiscountPrice
		p.DiscountPrice = &d
	}
	return p
}

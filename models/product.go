package models

import (
	"errors"
	"fmt"
)

// ═══════════════════════════════════════════════════════════
// Product
// ═══════════════════════════════════════════════════════════

type CategoryID string

const (
	CategoryChicks   CategoryID = "chicks"
	CategoryEggs     CategoryID = "eggs"
	CategoryChicken  CategoryID = "chicken"
	CategoryProducts CategoryID = "products"

	// CategoryAll is the filter value that matches every category.
	CategoryAll CategoryID = "all"
)

// ValidCategory reports whether id is one of the four catalog categories.
func ValidCategory(id CategoryID) bool {
	switch id {
	case CategoryChicks, CategoryEggs, CategoryChicken, CategoryProducts:
		return true
	}
	return false
}

// Product is a catalog entry. Products are immutable once the catalog is loaded.
type Product struct {
	ID               string     `json:"id" yaml:"id"`
	Name             string     `json:"name" yaml:"name"`
	Category         CategoryID `json:"category" yaml:"category"`
	Price            float64    `json:"price" yaml:"price" example:"450"`
	DiscountPrice    *float64   `json:"discountPrice,omitempty" yaml:"discountPrice,omitempty" example:"420"`
	Description      string     `json:"description" yaml:"description"`
	ShortDescription string     `json:"shortDescription" yaml:"shortDescription"`
	Images           []string   `json:"images" yaml:"images"`
	Stock            int        `json:"stock" yaml:"stock" example:"100"`
	Featured         bool       `json:"featured,omitempty" yaml:"featured,omitempty"`
	Tags             []string   `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// EffectivePrice is the discounted price when present, otherwise the base price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// OnSale reports whether the product carries a discount below its base price.
func (p Product) OnSale() bool {
	return p.DiscountPrice != nil && *p.DiscountPrice < p.Price
}

func (p Product) Validate() error {
	if p.ID == "" {
		return errors.New("product id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("product %s: name is required", p.ID)
	}
	if !ValidCategory(p.Category) {
		return fmt.Errorf("product %s: unknown category %q", p.ID, p.Category)
	}
	if p.Price < 0 {
		return fmt.Errorf("product %s: price must not be negative", p.ID)
	}
	if p.DiscountPrice != nil && (*p.DiscountPrice < 0 || *p.DiscountPrice > p.Price) {
		return fmt.Errorf("product %s: discount price must be between 0 and price", p.ID)
	}
	if len(p.Images) == 0 {
		return fmt.Errorf("product %s: at least one image is required", p.ID)
	}
	if p.Stock < 0 {
		return fmt.Errorf("product %s: stock must not be negative", p.ID)
	}
	return nil
}

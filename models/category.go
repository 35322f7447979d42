package models

// Category is one of the fixed product groupings shown in the storefront.
type Category struct {
	ID          CategoryID `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Image       string     `json:"image" yaml:"image"`
}

// CategorySummary is a category with the number of products filed under it.
type CategorySummary struct {
	Category
	ProductCount int `json:"productCount"`
}

// CategoryWithProducts is the payload of the category detail endpoint.
type CategoryWithProducts struct {
	Category Category  `json:"category"`
	Products []Product `json:"products"`
}

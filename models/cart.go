package models

// CartItem pairs a product snapshot with a quantity. A cart holds at most one
// item per product id and the quantity never exceeds the product's stock.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is the effective price times the quantity.
func (i CartItem) LineTotal() float64 {
	return i.Product.EffectivePrice() * float64(i.Quantity)
}

type CartSummary struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	Subtotal   float64    `json:"subtotal"`
}

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required" example:"3"`
	Quantity  int    `json:"quantity" example:"2"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required" example:"1"`
}

type WishlistRequest struct {
	ProductID string `json:"product_id" binding:"required" example:"3"`
}

type WishlistSummary struct {
	Items []Product `json:"items"`
	Count int       `json:"count"`
}

type WishlistMembership struct {
	ProductID  string `json:"productId"`
	InWishlist bool   `json:"inWishlist"`
}

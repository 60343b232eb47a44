package schema

// CartItem is one line of the active cart.
type CartItem struct {
	ProductID ID      `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Cart is the buyer's active cart as reported by the backend; Total is
// computed server side.
type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// CartItemInput adds or updates a cart line.
type CartItemInput struct {
	ProductID ID  `json:"productId"`
	Quantity  int `json:"quantity"`
}

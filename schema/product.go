package schema

// Product is a catalogue entry belonging to a shop.
type Product struct {
	ID          ID      `json:"id"`
	ShopID      ID      `json:"shopId"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// ProductInput is the create/update payload for a product.
type ProductInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// ProductQuery narrows a catalogue listing. Zero values are omitted from the
// request.
type ProductQuery struct {
	ShopID   ID
	Category string
	Search   string
}

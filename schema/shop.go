package schema

// Shop is a seller storefront.
type Shop struct {
	ID          ID      `json:"id"`
	VendorID    ID      `json:"vendorId"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Address     string  `json:"address,omitempty"`
	Telephone   string  `json:"telephone,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
}

// ShopInput is the create/update payload for a shop. The optional image is
// submitted separately as a multipart part, not in this struct.
type ShopInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
	Telephone   string `json:"telephone,omitempty"`
}

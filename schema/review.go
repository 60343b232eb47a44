package schema

import "time"

// Review is a buyer review of a product.
type Review struct {
	ID        ID        `json:"id"`
	ProductID ID        `json:"productId"`
	UserID    ID        `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewInput creates a review. Rating is 1..5; the backend rejects values
// outside that range.
type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

package client

import (
	"context"
	"net/http"

	"github.com/soukhub/soukhub-go/schema"
)

// ListReviews returns the reviews of a product.
func (c *Client) ListReviews(ctx context.Context, productID schema.ID) ([]schema.Review, error) {
	envelope, err := get[schema.ReviewList](ctx, c, "/products/"+productID.String()+"/reviews", "failed to list reviews")
	return envelope.Reviews, err
}

// CreateReview posts a review for a product the caller bought.
func (c *Client) CreateReview(ctx context.Context, productID schema.ID, input schema.ReviewInput) (*schema.Review, error) {
	review, err := do[schema.Review](ctx, c, http.MethodPost, "/products/"+productID.String()+"/reviews", input, "failed to post review")
	if err != nil {
		return nil, err
	}
	return &review, nil
}

package client

import (
	"context"
	"net/http"

	"github.com/soukhub/soukhub-go/schema"
)

// Cart returns the buyer's active cart.
func (c *Client) Cart(ctx context.Context) (*schema.Cart, error) {
	cart, err := get[schema.Cart](ctx, c, "/cart", "failed to load cart")
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddCartItem adds a product to the cart and returns the updated cart.
func (c *Client) AddCartItem(ctx context.Context, input schema.CartItemInput) (*schema.Cart, error) {
	cart, err := do[schema.Cart](ctx, c, http.MethodPost, "/cart/items", input, "failed to add to cart")
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// UpdateCartItem changes the quantity of a cart line.
func (c *Client) UpdateCartItem(ctx context.Context, productID schema.ID, quantity int) (*schema.Cart, error) {
	input := schema.CartItemInput{ProductID: productID, Quantity: quantity}
	cart, err := do[schema.Cart](ctx, c, http.MethodPut, "/cart/items/"+productID.String(), input, "failed to update cart")
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, productID schema.ID) (*schema.Cart, error) {
	cart, err := do[schema.Cart](ctx, c, http.MethodDelete, "/cart/items/"+productID.String(), nil, "failed to remove from cart")
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) ClearCart(ctx context.Context) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, "/cart", nil, "failed to clear cart")
	return err
}

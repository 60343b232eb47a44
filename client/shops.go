package client

import (
	"context"
	"net/http"

	"github.com/soukhub/soukhub-go/schema"
)

// ListShops returns all storefronts.
func (c *Client) ListShops(ctx context.Context) ([]schema.Shop, error) {
	envelope, err := get[schema.ShopList](ctx, c, "/shops", "failed to list shops")
	return envelope.Shops, err
}

func (c *Client) GetShop(ctx context.Context, id schema.ID) (*schema.Shop, error) {
	shop, err := get[schema.Shop](ctx, c, "/shops/"+id.String(), "failed to load shop")
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

// CreateShop creates a storefront for the logged-in seller; image is optional.
func (c *Client) CreateShop(ctx context.Context, input schema.ShopInput, image *Upload) (*schema.Shop, error) {
	shop, err := submit[schema.Shop](ctx, c, http.MethodPost, "/shops", input, image, "failed to create shop")
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

func (c *Client) UpdateShop(ctx context.Context, id schema.ID, input schema.ShopInput, image *Upload) (*schema.Shop, error) {
	shop, err := submit[schema.Shop](ctx, c, http.MethodPut, "/shops/"+id.String(), input, image, "failed to update shop")
	if err != nil {
		return nil, err
	}
	return &shop, nil
}

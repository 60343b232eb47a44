package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/soukhub/soukhub-go/schema"
)

// ListProducts returns catalogue entries matching query; a zero query lists
// everything.
func (c *Client) ListProducts(ctx context.Context, query schema.ProductQuery) ([]schema.Product, error) {
	values := url.Values{}
	if query.ShopID != "" {
		values.Set("shopId", query.ShopID.String())
	}
	if query.Category != "" {
		values.Set("category", query.Category)
	}
	if query.Search != "" {
		values.Set("q", query.Search)
	}
	path := "/products"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}
	envelope, err := get[schema.ProductList](ctx, c, path, "failed to list products")
	return envelope.Products, err
}

func (c *Client) GetProduct(ctx context.Context, id schema.ID) (*schema.Product, error) {
	product, err := get[schema.Product](ctx, c, "/products/"+id.String(), "failed to load product")
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct adds a catalogue entry to a shop; image is optional.
func (c *Client) CreateProduct(ctx context.Context, shopID schema.ID, input schema.ProductInput, image *Upload) (*schema.Product, error) {
	product, err := submit[schema.Product](ctx, c, http.MethodPost, "/shops/"+shopID.String()+"/products", input, image, "failed to create product")
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id schema.ID, input schema.ProductInput, image *Upload) (*schema.Product, error) {
	product, err := submit[schema.Product](ctx, c, http.MethodPut, "/products/"+id.String(), input, image, "failed to update product")
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id schema.ID) error {
	_, err := do[struct{}](ctx, c, http.MethodDelete, "/products/"+id.String(), nil, "failed to delete product")
	return err
}

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/soukhub/soukhub-go/schema"
)

// Checkout turns the active cart into an order. Each invocation carries a
// fresh Idempotency-Key so the backend can deduplicate a retried submission;
// the client itself never retries.
func (c *Client) Checkout(ctx context.Context, request schema.CheckoutRequest) (*schema.Order, error) {
	data, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}
	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("Accept", "application/json")
	header.Set("Idempotency-Key", uuid.NewString())
	order, err := call[schema.Order](ctx, c, http.MethodPost, "/orders", bytes.NewReader(data), header, "checkout failed")
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListMyOrders returns the caller's orders: purchases for buyers, incoming
// orders for sellers.
func (c *Client) ListMyOrders(ctx context.Context) ([]schema.Order, error) {
	envelope, err := get[schema.OrderList](ctx, c, "/orders", "failed to list orders")
	return envelope.Orders, err
}

func (c *Client) GetOrder(ctx context.Context, id schema.ID) (*schema.Order, error) {
	order, err := get[schema.Order](ctx, c, "/orders/"+id.String(), "failed to load order")
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelOrder requests cancellation; whether the current status still permits
// it is the backend's decision.
func (c *Client) CancelOrder(ctx context.Context, id schema.ID) (*schema.Order, error) {
	order, err := do[schema.Order](ctx, c, http.MethodPost, "/orders/"+id.String()+"/cancel", nil, "failed to cancel order")
	if err != nil {
		return nil, err
	}
	return &order, nil
}

type statusChange struct {
	Status string `json:"status"`
}

// AdvanceOrder requests a transition to status (seller operations:
// processing, ready, shipped). No legality check happens locally; an illegal
// transition comes back as an *APIError from the backend.
func (c *Client) AdvanceOrder(ctx context.Context, id schema.ID, status schema.OrderStatus) (*schema.Order, error) {
	order, err := do[schema.Order](ctx, c, http.MethodPost, "/orders/"+id.String()+"/status",
		statusChange{Status: string(status)}, "failed to update order status")
	if err != nil {
		return nil, err
	}
	return &order, nil
}

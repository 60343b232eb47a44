package schema

import "time"

// OrderStatus is the server-owned order lifecycle state. The client never
// validates transitions locally; it renders the current status and requests
// the next one (see Next for the usual progression).
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderReady      OrderStatus = "ready"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// Next returns the usual forward progression from this status. It is a display
// hint only: the backend remains the authority on which transitions it accepts,
// and endpoints may reject a transition Next suggested or accept one it did not.
func (s OrderStatus) Next() []OrderStatus {
	switch s {
	case OrderPending:
		return []OrderStatus{OrderProcessing, OrderCancelled}
	case OrderProcessing:
		return []OrderStatus{OrderReady, OrderCancelled}
	case OrderReady:
		return []OrderStatus{OrderShipped}
	case OrderShipped:
		return []OrderStatus{OrderDelivered}
	default:
		return nil
	}
}

// OrderLine is one purchased product within an order.
type OrderLine struct {
	ProductID ID      `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Order is a placed order. NextActions, when the backend provides it, lists
// the transition endpoints currently legal for the caller's role; absent on
// older backend versions.
type Order struct {
	ID          ID          `json:"id"`
	BuyerID     ID          `json:"buyerId"`
	ShopID      ID          `json:"shopId"`
	Lines       []OrderLine `json:"lines"`
	Total       float64     `json:"total"`
	Status      OrderStatus `json:"status"`
	NextActions []string    `json:"nextActions,omitempty"`
	Address     string      `json:"address,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// CheckoutRequest turns the active cart into an order. Address overrides the
// profile address when set.
type CheckoutRequest struct {
	Address string `json:"address,omitempty"`
}

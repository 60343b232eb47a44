package schema

import "time"

// DeliveryNote ("bon de livraison") is the document linking an order to its
// delivery mission. It is issued by the seller when the order is ready and
// referenced by the courier during pickup.
type DeliveryNote struct {
	ID        ID        `json:"id"`
	OrderID   ID        `json:"orderId"`
	Reference string    `json:"reference"`
	IssuedAt  time.Time `json:"issuedAt"`
	Remarks   string    `json:"remarks,omitempty"`
}

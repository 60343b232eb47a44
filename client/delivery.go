package client

import (
	"context"

	"github.com/soukhub/soukhub-go/schema"
)

// ListDeliveryNotes returns the delivery notes issued for an order.
func (c *Client) ListDeliveryNotes(ctx context.Context, orderID schema.ID) ([]schema.DeliveryNote, error) {
	envelope, err := get[schema.DeliveryNoteList](ctx, c, "/orders/"+orderID.String()+"/delivery-notes", "failed to list delivery notes")
	return envelope.DeliveryNotes, err
}

func (c *Client) GetDeliveryNote(ctx context.Context, id schema.ID) (*schema.DeliveryNote, error) {
	note, err := get[schema.DeliveryNote](ctx, c, "/delivery-notes/"+id.String(), "failed to load delivery note")
	if err != nil {
		return nil, err
	}
	return &note, nil
}

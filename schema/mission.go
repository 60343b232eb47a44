package schema

import "time"

// MissionStatus is the server-owned delivery mission lifecycle state,
// independent of the status of the order it delivers.
type MissionStatus string

const (
	MissionPendingPickup MissionStatus = "pending_pickup"
	MissionInTransit     MissionStatus = "in_transit"
	MissionDelivered     MissionStatus = "delivered"
	MissionFailed        MissionStatus = "failed"
)

// Next returns the usual forward progression from this status. Display hint
// only; the backend validates the actual transition.
func (s MissionStatus) Next() []MissionStatus {
	switch s {
	case MissionPendingPickup:
		return []MissionStatus{MissionInTransit}
	case MissionInTransit:
		return []MissionStatus{MissionDelivered, MissionFailed}
	default:
		return nil
	}
}

// Mission is a delivery assignment offered to or accepted by a courier.
// CourierID is empty until a courier accepts the mission.
type Mission struct {
	ID             ID            `json:"id"`
	OrderID        ID            `json:"orderId"`
	DeliveryNoteID ID            `json:"deliveryNoteId,omitempty"`
	CourierID      ID            `json:"courierId,omitempty"`
	PickupAddress  string        `json:"pickupAddress"`
	DropAddress    string        `json:"dropAddress"`
	Status         MissionStatus `json:"status"`
	NextActions    []string      `json:"nextActions,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
}

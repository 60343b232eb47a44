package schema

import "time"

// Notification is a per-user platform message (order updates, mission offers,
// review replies).
type Notification struct {
	ID        ID        `json:"id"`
	UserID    ID        `json:"userId"`
	Title     string    `json:"title"`
	Body      string    `json:"body,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

package schema

// Collection endpoints wrap their payload in a thin envelope object with a
// named field; the client unwraps these before handing results to callers.
type (
	ShopList struct {
		Shops []Shop `json:"shops"`
	}

	ProductList struct {
		Products []Product `json:"products"`
	}

	OrderList struct {
		Orders []Order `json:"orders"`
	}

	DeliveryNoteList struct {
		DeliveryNotes []DeliveryNote `json:"deliveryNotes"`
	}

	MissionList struct {
		Missions []Mission `json:"missions"`
	}

	NotificationList struct {
		Notifications []Notification `json:"notifications"`
	}

	ReviewList struct {
		Reviews []Review `json:"reviews"`
	}
)

// ServerMessage is the error envelope returned on non-2xx responses; Message
// may be empty on older backend versions.
type ServerMessage struct {
	Message string `json:"message"`
}

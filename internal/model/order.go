package model

import "time"

// OrderCollection is the MongoDB collection holding order documents.
const OrderCollection = "orders"

// Order status lifecycle values. StatusCancelled and StatusDelivered are
// terminal; every other status may be followed by another entry.
const (
	StatusReceived         = "Order Received"
	StatusCooking          = "Cooking"
	StatusReadyForDelivery = "Ready For Delivery"
	StatusInTransit        = "In Transit"
	StatusDelivered        = "Delivered"
	StatusCancelled        = "Cancelled"
)

// KnownStatuses lists every valid order status value.
var KnownStatuses = []string{
	StatusReceived,
	StatusCooking,
	StatusReadyForDelivery,
	StatusInTransit,
	StatusDelivered,
	StatusCancelled,
}

// ValidStatus reports whether s is one of the known lifecycle values.
func ValidStatus(s string) bool {
	for _, k := range KnownStatuses {
		if k == s {
			return true
		}
	}
	return false
}

// DeliveryAddress is embedded in the order document.
type DeliveryAddress struct {
	Name       string `bson:"name" json:"name"`
	AddressOne string `bson:"addressOne" json:"address_one"`
	AddressTwo string `bson:"addressTwo,omitempty" json:"address_two,omitempty"`
	PostCode   string `bson:"postCode" json:"post_code"`
}

// Order is a customer order, stored as a single document in the "orders"
// collection. Items maps menu item IDs to quantities.
type Order struct {
	ID                   string          `bson:"_id" json:"id"`
	Items                map[string]int  `bson:"items" json:"items"`
	DeliveryAddress      DeliveryAddress `bson:"deliveryAddress" json:"delivery_address"`
	DateTimeOfSubmission time.Time       `bson:"dateTimeOfSubmission" json:"date_time_of_submission"`
}

// OrderStatus is one entry in an order's status history. These live in the
// in-memory status region rather than MongoDB; the zero StatusDate is never
// stored.
type OrderStatus struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	StatusDate time.Time `json:"status_date"`
}

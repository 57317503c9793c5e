package order

import "time"

type OrderDB struct {
	ID          string
	Status      string
	IsPaid      bool
	IsDelivered bool
	DeliveredAt *time.Time

	Address    string
	City       string
	State      string
	PostalCode string
	Country    string

	ConsigneeName  string
	ConsigneePhone string
	ConsigneeEmail string

	AWBNo          *string
	TrackingID     *string
	ShippingStatus string
	ShippingError  *string
	AWBGeneratedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

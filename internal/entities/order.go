package entities

import (
	"time"
)

type Order struct {
	ID          string
	Status      OrderStatusType
	IsPaid      bool
	IsDelivered bool
	DeliveredAt *time.Time

	ShippingAddress ShippingAddress
	Consignee       Consignee

	AWBNo          *string
	TrackingID     *string
	ShippingStatus ShippingStatusType
	ShippingError  *string
	AWBGeneratedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ShippingAddress struct {
	Address    string
	City       string
	State      string
	PostalCode string
	Country    string
}

type Consignee struct {
	Name  string
	Phone string
	Email string
}

// OrderStatusType — бизнес-статус заказа. Движется только вперед:
// processing -> shipped -> delivered; cancelled терминален.
type OrderStatusType string

const (
	OrderProcessing OrderStatusType = "processing"
	OrderShipped    OrderStatusType = "shipped"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// ShippingStatusType — статус доставки со стороны перевозчика,
// отдельная ось от бизнес-статуса заказа.
type ShippingStatusType string

const (
	ShippingPending   ShippingStatusType = "pending"
	ShippingInTransit ShippingStatusType = "in_transit"
	ShippingDelivered ShippingStatusType = "delivered"
	ShippingFailed    ShippingStatusType = "failed"
	ShippingCancelled ShippingStatusType = "cancelled"
)

func (s ShippingStatusType) String() string {
	return string(s)
}

type ShippingAddressModify struct {
	Address    *string
	City       *string
	State      *string
	PostalCode *string
	Country    *string
}

// WaybillAssignment — результат успешной генерации накладной.
type WaybillAssignment struct {
	OrderID        string
	AWBNo          string
	TrackingID     string
	Status         OrderStatusType
	ShippingStatus ShippingStatusType
	GeneratedAt    time.Time
}

type PendingShipmentsFilter struct {
	ShippingStatus *ShippingStatusType
	Page           int
	Limit          int
}

type OrderPage struct {
	Orders []Order
	Total  int64
	Page   int
	Limit  int
}

// ShippingErrorDetail — последняя ошибка доставки для операторов.
type ShippingErrorDetail struct {
	OrderID        string
	ShippingStatus ShippingStatusType
	ShippingError  *string
	CanRetry       bool
}

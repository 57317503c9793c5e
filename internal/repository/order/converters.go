package order

import "service/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:          o.ID,
		Status:      entities.OrderStatusType(o.Status),
		IsPaid:      o.IsPaid,
		IsDelivered: o.IsDelivered,
		DeliveredAt: o.DeliveredAt,
		ShippingAddress: entities.ShippingAddress{
			Address:    o.Address,
			City:       o.City,
			State:      o.State,
			PostalCode: o.PostalCode,
			Country:    o.Country,
		},
		Consignee: entities.Consignee{
			Name:  o.ConsigneeName,
			Phone: o.ConsigneePhone,
			Email: o.ConsigneeEmail,
		},
		AWBNo:          o.AWBNo,
		TrackingID:     o.TrackingID,
		ShippingStatus: entities.ShippingStatusType(o.ShippingStatus),
		ShippingError:  o.ShippingError,
		AWBGeneratedAt: o.AWBGeneratedAt,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

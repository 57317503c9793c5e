package shipment

import (
	"strings"

	"service/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func hasCompleteAddress(addr entities.ShippingAddress) bool {
	return strings.TrimSpace(addr.Address) != "" &&
		strings.TrimSpace(addr.City) != "" &&
		strings.TrimSpace(addr.PostalCode) != ""
}

func isValidShippingStatus(status entities.ShippingStatusType) bool {
	switch status {
	case entities.ShippingPending,
		entities.ShippingInTransit,
		entities.ShippingDelivered,
		entities.ShippingFailed,
		entities.ShippingCancelled:
		return true
	default:
		return false
	}
}

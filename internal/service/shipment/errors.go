package shipment

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidStatusFilter   = errors.New("invalid shipping status filter")

	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderCancelled    = errors.New("order is cancelled")
	ErrOrderDelivered    = errors.New("order already delivered")
	ErrOrderNotPaid      = errors.New("order is not paid")
	ErrIncompleteAddress = errors.New("incomplete shipping address")
	ErrOrderNotShipped   = errors.New("order not in shipped state")

	ErrOrderAlreadyShipped = errors.New("order already shipped")
	ErrAWBAlreadyExists    = errors.New("awb already exists")
	ErrAWBNotGenerated     = errors.New("awb not generated")
)

// AlreadyGeneratedError — сигнал идемпотентности, а не отказ: несет
// существующий AWB, чтобы вызывающий мог продолжить без повторной
// генерации.
type AlreadyGeneratedError struct {
	AWBNo      string
	TrackingID string
	reason     error
}

func NewAlreadyGeneratedError(reason error, awbNo, trackingID string) *AlreadyGeneratedError {
	return &AlreadyGeneratedError{
		AWBNo:      awbNo,
		TrackingID: trackingID,
		reason:     reason,
	}
}

func (e *AlreadyGeneratedError) Error() string {
	return fmt.Sprintf("%v (awb %q)", e.reason, e.AWBNo)
}

func (e *AlreadyGeneratedError) Unwrap() error {
	return e.reason
}

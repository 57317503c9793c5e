// Package respond содержит общие процедуры записи JSON-ответов и
// коды ошибок HTTP-поверхности.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/entities"
	"service/internal/generated/dto"
)

const (
	CodeOrderNotFound       = "ORDER_NOT_FOUND"
	CodeOrderAlreadyShipped = "ORDER_ALREADY_SHIPPED"
	CodeAWBAlreadyExists    = "AWB_ALREADY_EXISTS"
	CodeOrderCancelled      = "ORDER_CANCELLED"
	CodeOrderDelivered      = "ORDER_DELIVERED"
	CodeOrderNotPaid        = "ORDER_NOT_PAID"
	CodeIncompleteAddress   = "INCOMPLETE_ADDRESS"
	CodeAWBNotGenerated     = "AWB_NOT_GENERATED"
	CodeInsufficientBalance = "BLUEDART_INSUFFICIENT_BALANCE"
	CodeCarrierAuthError    = "BLUEDART_AUTH_ERROR"
	CodeCarrierUnavailable  = "BLUEDART_UNAVAILABLE"
	CodeCarrierError        = "BLUEDART_ERROR"
	CodeValidationError     = "VALIDATION_ERROR"
	CodeInternalError       = "INTERNAL_ERROR"
)

func JSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func Error(w http.ResponseWriter, status int, code, message string) error {
	return JSON(w, status, dto.Error{
		Code:    code,
		Message: message,
	})
}

// CarrierError транслирует классифицированную ошибку перевозчика в
// HTTP-ответ: нехватка баланса — 402, авторизация и недоступность —
// 503, прочее — 500.
func CarrierError(w http.ResponseWriter, err error) (bool, error) {
	var balanceErr *entities.CarrierBalanceError
	if errors.As(err, &balanceErr) {
		return true, Error(w, http.StatusPaymentRequired, CodeInsufficientBalance, balanceErr.Error())
	}

	var authErr *entities.CarrierAuthError
	if errors.As(err, &authErr) {
		return true, Error(w, http.StatusServiceUnavailable, CodeCarrierAuthError, authErr.Error())
	}

	var unavailableErr *entities.CarrierUnavailableError
	if errors.As(err, &unavailableErr) {
		return true, Error(w, http.StatusServiceUnavailable, CodeCarrierUnavailable, unavailableErr.Error())
	}

	var carrierErr *entities.CarrierError
	if errors.As(err, &carrierErr) {
		return true, Error(w, http.StatusInternalServerError, CodeCarrierError, carrierErr.Error())
	}

	return false, nil
}

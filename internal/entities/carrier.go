package entities

// Waybill — идентификаторы, выданные перевозчиком при создании накладной.
// После присвоения заказу неизменяемы.
type Waybill struct {
	AWBNo      string
	TrackingID string
	Raw        []byte
}

type WaybillRequest struct {
	OrderID     string
	Consignee   Consignee
	Address     ShippingAddress
	WeightGrams int // 0 — адаптер подставит вес по умолчанию
}

// Типизированные ошибки перевозчика. Адаптер обязан возвращать только их,
// сырые ошибки транспорта и тексты API наружу не выходят.

// CarrierBalanceError — на счету перевозчика недостаточно средств,
// требуется ручное пополнение.
type CarrierBalanceError struct {
	Message string
}

func (e *CarrierBalanceError) Error() string {
	return "carrier balance error: " + e.Message
}

// CarrierAuthError — перевозчик отверг учетные данные.
type CarrierAuthError struct {
	Message string
}

func (e *CarrierAuthError) Error() string {
	return "carrier auth error: " + e.Message
}

// CarrierUnavailableError — сетевая или временная ошибка, повтор уместен.
type CarrierUnavailableError struct {
	Message string
}

func (e *CarrierUnavailableError) Error() string {
	return "carrier unavailable: " + e.Message
}

// CarrierError — прочие ошибки уровня перевозчика.
type CarrierError struct {
	Message string
}

func (e *CarrierError) Error() string {
	return "carrier error: " + e.Message
}

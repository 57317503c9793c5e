package bluedart

import "time"

type Config struct {
	BaseURL    string
	LicenseKey string
	LoginID    string

	// TokenTTL — время жизни кешированного JWT токена. Задается
	// консервативно ниже номинального окна валидности перевозчика
	// (45 минут из заявленных 60), чтобы не использовать токен на
	// границе истечения.
	TokenTTL time.Duration

	Shipper ShipperProfile
}

// ShipperProfile — фиксированный профиль отправителя, подставляется
// в каждую накладную.
type ShipperProfile struct {
	Name         string
	Address      string
	City         string
	State        string
	PostalCode   string
	CustomerCode string
}

package entities

import "time"

// TrackingRecord — снимок состояния отправления в истории трекинга.
// Записи append-only: новые снимки не удаляют старые, для пары
// (OrderID, AWBNo) ровно одна запись помечена IsLatest.
type TrackingRecord struct {
	ID           int64
	OrderID      string
	AWBNo        string
	Status       string
	Description  string
	Location     TrackingLocation
	EventDate    *time.Time
	LastSyncedAt time.Time
	RawPayload   []byte
	IsLatest     bool
	CreatedAt    time.Time
}

type TrackingLocation struct {
	City    string
	State   string
	Country string
}

// TrackingSnapshot — разобранный ответ перевозчика на запрос трекинга.
type TrackingSnapshot struct {
	Status      string
	Description string
	Location    TrackingLocation
	EventDate   *time.Time
	Raw         []byte
}

// TrackingDataSource указывает происхождение ответа трекинга.
type TrackingDataSource struct {
	IsLive      bool
	IsCached    bool
	Unavailable bool
}

// TrackingReport — составной ответ "где мой заказ": поля заказа плюс
// последние известные данные трекинга и их происхождение.
type TrackingReport struct {
	OrderID        string
	AWBNo          *string
	TrackingID     *string
	OrderStatus    OrderStatusType
	ShippingStatus ShippingStatusType
	ShippingError  *string

	CarrierStatus string
	Description   string
	Location      TrackingLocation
	EventDate     *time.Time
	LastSyncedAt  *time.Time

	DataSource TrackingDataSource

	// LiveError — диагностика неудавшегося живого запроса, не фатальна
	// для ответа в целом.
	LiveError string
}

type SweepResult struct {
	Selected  int
	Synced    int
	Delivered int
	Failed    int
}

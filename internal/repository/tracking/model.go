package tracking

import "time"

type TrackingRecordDB struct {
	ID           int64
	OrderID      string
	AWBNo        string
	Status       string
	Description  string
	City         string
	State        string
	Country      string
	EventDate    *time.Time
	LastSyncedAt time.Time
	RawPayload   []byte
	IsLatest     bool
	CreatedAt    time.Time
}

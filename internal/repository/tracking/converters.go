package tracking

import "service/internal/entities"

func ToDomain(r *TrackingRecordDB) *entities.TrackingRecord {
	if r == nil {
		return nil
	}
	return &entities.TrackingRecord{
		ID:          r.ID,
		OrderID:     r.OrderID,
		AWBNo:       r.AWBNo,
		Status:      r.Status,
		Description: r.Description,
		Location: entities.TrackingLocation{
			City:    r.City,
			State:   r.State,
			Country: r.Country,
		},
		EventDate:    r.EventDate,
		LastSyncedAt: r.LastSyncedAt,
		RawPayload:   r.RawPayload,
		IsLatest:     r.IsLatest,
		CreatedAt:    r.CreatedAt,
	}
}

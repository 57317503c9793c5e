package tracking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/tracking"
)

const trackingColumns = `
	id, order_id, awb_no, status, description,
	city, state, country,
	event_date, last_synced_at, raw_payload, is_latest, created_at
`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// SupersedeLatest снимает флаг is_latest с текущих записей пары. Вызов
// идемпотентен: для первой записи по накладной обновлять нечего.
func (r *Repository) SupersedeLatest(ctx context.Context, orderID, awbNo string) error {
	query := `
		UPDATE tracking_records
		SET is_latest = FALSE
		WHERE order_id = $1
		  AND awb_no = $2
		  AND is_latest = TRUE
	`

	_, err := r.querier.Exec(ctx, query, orderID, awbNo)
	if err != nil {
		return fmt.Errorf("unexpected tracking repository supersede error: %w", err)
	}

	return nil
}

func (r *Repository) Insert(ctx context.Context, record *entities.TrackingRecord) (*entities.TrackingRecord, error) {
	query := `
		INSERT INTO tracking_records (
			order_id, awb_no, status, description,
			city, state, country,
			event_date, last_synced_at, raw_payload, is_latest
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + trackingColumns

	recordDB, err := scanRecord(r.querier.QueryRow(
		ctx,
		query,
		record.OrderID,
		record.AWBNo,
		record.Status,
		record.Description,
		record.Location.City,
		record.Location.State,
		record.Location.Country,
		record.EventDate,
		record.LastSyncedAt,
		record.RawPayload,
		record.IsLatest,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("concurrent latest tracking record write: %w", err)
		}
		return nil, fmt.Errorf("unexpected tracking repository insert error: %w", err)
	}

	return ToDomain(recordDB), nil
}

func (r *Repository) GetLatest(ctx context.Context, orderID, awbNo string) (*entities.TrackingRecord, error) {
	query := `
		SELECT ` + trackingColumns + `
		FROM tracking_records
		WHERE order_id = $1
		  AND awb_no = $2
		  AND is_latest = TRUE
	`

	recordDB, err := scanRecord(r.querier.QueryRow(ctx, query, orderID, awbNo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, tracking.ErrNoTrackingData
		}
		return nil, fmt.Errorf("unexpected tracking repository get latest error: %w", err)
	}

	return ToDomain(recordDB), nil
}

func (r *Repository) ListHistory(ctx context.Context, orderID string, limit int) ([]entities.TrackingRecord, error) {
	query := `
		SELECT ` + trackingColumns + `
		FROM tracking_records
		WHERE order_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.querier.Query(ctx, query, orderID, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list history error: %w", err)
	}
	defer rows.Close()

	records := make([]entities.TrackingRecord, 0, limit)
	for rows.Next() {
		recordDB, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected tracking repository list history error: %w", err)
		}
		records = append(records, *ToDomain(recordDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list history error: %w", err)
	}

	return records, nil
}

func scanRecord(row pgx.Row) (*TrackingRecordDB, error) {
	var rec TrackingRecordDB
	err := row.Scan(
		&rec.ID,
		&rec.OrderID,
		&rec.AWBNo,
		&rec.Status,
		&rec.Description,
		&rec.City,
		&rec.State,
		&rec.Country,
		&rec.EventDate,
		&rec.LastSyncedAt,
		&rec.RawPayload,
		&rec.IsLatest,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

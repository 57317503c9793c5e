package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `
	id, status, is_paid, is_delivered, delivered_at,
	address, city, state, postal_code, country,
	consignee_name, consignee_phone, consignee_email,
	awb_no, tracking_id, shipping_status, shipping_error, awb_generated_at,
	created_at, updated_at
`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(orderDB), nil
}

// ClaimAWB присваивает накладную атомарным условным апдейтом: строка
// меняется только пока awb_no пуст, гонка двух генераций решается на
// уровне БД без read-then-write.
func (r *Repository) ClaimAWB(ctx context.Context, orderID string, waybill entities.Waybill, consignee entities.Consignee, generatedAt time.Time) (bool, error) {
	query := `
		UPDATE orders
		SET awb_no = $2,
		    tracking_id = $3,
		    status = $4,
		    shipping_status = $5,
		    shipping_error = NULL,
		    awb_generated_at = $6,
		    consignee_name = $7,
		    consignee_phone = $8,
		    consignee_email = $9,
		    updated_at = NOW()
		WHERE id = $1
		  AND awb_no IS NULL
	`

	result, err := r.querier.Exec(
		ctx,
		query,
		orderID,
		waybill.AWBNo,
		waybill.TrackingID,
		entities.OrderShipped.String(),
		entities.ShippingInTransit.String(),
		generatedAt,
		consignee.Name,
		consignee.Phone,
		consignee.Email,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return false, fmt.Errorf("waybill number already assigned to another order: %w", err)
		}
		return false, fmt.Errorf("unexpected order repository claim awb error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) SetShippingFailure(ctx context.Context, orderID string, status entities.ShippingStatusType, message string) error {
	query := `
		UPDATE orders
		SET shipping_status = $2,
		    shipping_error = $3,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, orderID, status.String(), message)
	if err != nil {
		return fmt.Errorf("unexpected order repository set failure error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shipment.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) MarkCancelled(ctx context.Context, orderID string) (*entities.Order, error) {
	// Guard от регресса статуса: доставленный заказ не отменяется даже
	// при гонке с промоутом из фонового свипа.
	query := `
		UPDATE orders
		SET status = $2,
		    shipping_status = $3,
		    updated_at = NOW()
		WHERE id = $1
		  AND status <> $4
		RETURNING ` + orderColumns

	orderDB, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		orderID,
		entities.OrderCancelled.String(),
		entities.ShippingCancelled.String(),
		entities.OrderDelivered.String(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrOrderDelivered
		}
		return nil, fmt.Errorf("unexpected order repository cancel error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) MarkDelivered(ctx context.Context, orderID string, deliveredAt time.Time) error {
	// Доставка финализируется только из shipped: статус не регрессирует.
	query := `
		UPDATE orders
		SET status = $2,
		    shipping_status = $3,
		    is_delivered = TRUE,
		    delivered_at = $4,
		    updated_at = NOW()
		WHERE id = $1
		  AND status = $5
	`

	result, err := r.querier.Exec(
		ctx,
		query,
		orderID,
		entities.OrderDelivered.String(),
		entities.ShippingDelivered.String(),
		deliveredAt,
		entities.OrderShipped.String(),
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository mark delivered error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shipment.ErrOrderNotShipped
	}

	return nil
}

func (r *Repository) UpdateShippingAddress(ctx context.Context, orderID string, modify entities.ShippingAddressModify) (*entities.ShippingAddress, error) {
	builder := qb.Update("orders")

	if modify.Address != nil {
		builder = builder.Set("address", *modify.Address)
	}
	if modify.City != nil {
		builder = builder.Set("city", *modify.City)
	}
	if modify.State != nil {
		builder = builder.Set("state", *modify.State)
	}
	if modify.PostalCode != nil {
		builder = builder.Set("postal_code", *modify.PostalCode)
	}
	if modify.Country != nil {
		builder = builder.Set("country", *modify.Country)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderID}).
		Suffix("RETURNING address, city, state, postal_code, country")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update address error: %w", err)
	}

	var address entities.ShippingAddress
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&address.Address,
		&address.City,
		&address.State,
		&address.PostalCode,
		&address.Country,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update address error: %w", err)
	}

	return &address, nil
}

func (r *Repository) ListPending(ctx context.Context, filter entities.PendingShipmentsFilter) (*entities.OrderPage, error) {
	conditions := sq.And{
		sq.Eq{"status": entities.OrderProcessing.String()},
		sq.Eq{"is_paid": true},
		sq.Eq{"awb_no": nil},
	}
	if filter.ShippingStatus != nil {
		conditions = append(conditions, sq.Eq{"shipping_status": filter.ShippingStatus.String()})
	}

	countQuery, countArgs, err := qb.
		Select("COUNT(*)").
		From("orders").
		Where(conditions).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
	}

	var total int64
	if err := r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
	}

	offset := uint64(filter.Page-1) * uint64(filter.Limit)

	listQuery, listArgs, err := qb.
		Select(orderColumns).
		From("orders").
		Where(conditions).
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
	}

	rows, err := r.querier.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0, filter.Limit)
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
		}
		orders = append(orders, *ToDomain(orderDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list pending error: %w", err)
	}

	return &entities.OrderPage{
		Orders: orders,
		Total:  total,
		Page:   filter.Page,
		Limit:  filter.Limit,
	}, nil
}

func (r *Repository) ListInTransit(ctx context.Context, limit int) ([]entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE status = $1
		  AND shipping_status IN ($2, $3)
		  AND awb_no IS NOT NULL
		ORDER BY updated_at ASC
		LIMIT $4
	`

	rows, err := r.querier.Query(
		ctx,
		query,
		entities.OrderShipped.String(),
		entities.ShippingInTransit.String(),
		entities.ShippingPending.String(),
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list in-transit error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0, limit)
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list in-transit error: %w", err)
		}
		orders = append(orders, *ToDomain(orderDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list in-transit error: %w", err)
	}

	return orders, nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.Status,
		&o.IsPaid,
		&o.IsDelivered,
		&o.DeliveredAt,
		&o.Address,
		&o.City,
		&o.State,
		&o.PostalCode,
		&o.Country,
		&o.ConsigneeName,
		&o.ConsigneePhone,
		&o.ConsigneeEmail,
		&o.AWBNo,
		&o.TrackingID,
		&o.ShippingStatus,
		&o.ShippingError,
		&o.AWBGeneratedAt,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Row types mirror the table columns. The validation layer has its own value
// objects; handlers translate between the two. EventID and IngestedAt are
// assigned here, exactly once, at insert time.

type UserBehaviorEventRow struct {
	EventID    uuid.UUID
	EventType  string
	UserID     *int64
	EventTime  time.Time
	IngestedAt time.Time
	ProductID  int64
	SessionID  string
	Country    *string
	Source     *string
}

type CartEventRow struct {
	EventID       uuid.UUID
	CorrelationID string
	UserID        *int64
	ProductID     int64
	Action        string
	Quantity      int64
	EventTime     time.Time
}

type OrderEventRow struct {
	EventID    uuid.UUID
	OrderID    string
	UserID     *int64
	Status     string
	Country    *string
	EventTime  time.Time
	IngestedAt time.Time
}

type OrderItemEventRow struct {
	EventID         uuid.UUID
	OrderID         string
	ProductID       string
	Description     *string
	Quantity        int64
	PriceAtPurchase int64
	EventTime       time.Time
}

type PaymentEventRow struct {
	EventID   uuid.UUID
	OrderID   string
	Amount    int64
	Status    string
	Currency  string
	EventTime time.Time
}

type LogisticsEventRow struct {
	EventID   uuid.UUID
	OrderID   string
	Status    string
	EventTime time.Time
}

// ListLimit caps the user behavior read-back endpoint.
const ListLimit = 100

// inTx runs fn inside a transaction scoped to this call. The transaction is
// rolled back on every error path; a success response is only possible after
// the commit completes.
func (s *Store) inTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(ctx, tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// InsertUserBehaviorEvent persists one user behavior row and returns it with
// the generated identity and ingestion timestamp filled in.
func (s *Store) InsertUserBehaviorEvent(ctx context.Context, row UserBehaviorEventRow) (UserBehaviorEventRow, error) {
	row.EventID = uuid.New()

	err := s.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO user_behavior_events
				(event_id, event_type, user_id, event_time, ingested_at, product_id, session_id, country, source)
			VALUES ($1, $2, $3, $4, now(), $5, $6, $7, $8)
			RETURNING ingested_at
		`, row.EventID, row.EventType, row.UserID, row.EventTime,
			row.ProductID, row.SessionID, row.Country, row.Source,
		).Scan(&row.IngestedAt)
	})
	if err != nil {
		return UserBehaviorEventRow{}, fmt.Errorf("failed to insert user behavior event: %w", err)
	}
	return row, nil
}

// ListUserBehaviorEvents returns up to limit rows (capped at ListLimit),
// ordered by ingestion time then identity so repeated reads are stable.
func (s *Store) ListUserBehaviorEvents(ctx context.Context, limit int) ([]UserBehaviorEventRow, error) {
	if limit <= 0 || limit > ListLimit {
		limit = ListLimit
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx, `
		SELECT event_id, event_type, user_id, event_time, ingested_at, product_id, session_id, country, source
		FROM user_behavior_events
		ORDER BY ingested_at, event_id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list user behavior events: %w", err)
	}
	defer rows.Close()

	var out []UserBehaviorEventRow
	for rows.Next() {
		var r UserBehaviorEventRow
		if err := rows.Scan(
			&r.EventID, &r.EventType, &r.UserID, &r.EventTime, &r.IngestedAt,
			&r.ProductID, &r.SessionID, &r.Country, &r.Source,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user behavior event: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user behavior events: %w", err)
	}
	return out, nil
}

// InsertCartEvent persists one cart row.
func (s *Store) InsertCartEvent(ctx context.Context, row CartEventRow) (CartEventRow, error) {
	row.EventID = uuid.New()

	err := s.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO cart_events
				(event_id, correlation_id, user_id, product_id, action, quantity, event_time)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, row.EventID, row.CorrelationID, row.UserID, row.ProductID,
			row.Action, row.Quantity, row.EventTime)
		return err
	})
	if err != nil {
		return CartEventRow{}, fmt.Errorf("failed to insert cart event: %w", err)
	}
	return row, nil
}

// InsertOrderEvent persists one order row. The unique index on order_id is
// the only duplicate guard; its violation surfaces as ErrDuplicateOrderID.
func (s *Store) InsertOrderEvent(ctx context.Context, row OrderEventRow) (OrderEventRow, error) {
	row.EventID = uuid.New()

	err := s.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return tx.QueryRow(ctx, `
			INSERT INTO order_events
				(event_id, order_id, user_id, status, country, event_time, ingested_at)
			VALUES ($1, $2, $3, $4, $5, $6, now())
			RETURNING ingested_at
		`, row.EventID, row.OrderID, row.UserID, row.Status, row.Country, row.EventTime,
		).Scan(&row.IngestedAt)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return OrderEventRow{}, ErrDuplicateOrderID
		}
		return OrderEventRow{}, fmt.Errorf("failed to insert order event: %w", err)
	}
	return row, nil
}

// InsertOrderItemEvent persists one order item row. Many items may share an
// order_id; no cross-table check is performed.
func (s *Store) InsertOrderItemEvent(ctx context.Context, row OrderItemEventRow) (OrderItemEventRow, error) {
	row.EventID = uuid.New()

	err := s.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO order_item_events
				(event_id, order_id, product_id, description, quantity, price_at_purchase, event_time)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, row.EventID, row.OrderID, row.ProductID, row.Description,
			row.Quantity, row.PriceAtPurchase, row.EventTime)
		return err
	})
	if err != nil {
		return OrderItemEventRow{}, fmt.Errorf("failed to insert order item event: %w", err)
	}
	return row, nil
}

// InsertPaymentEvent persists one payment row. Multiple payments may share an
// order_id (for example a refund after a success).
func (s *Store) InsertPaymentEvent(ctx context.Context, row PaymentEventRow) (PaymentEventRow, error) {
	row.EventID = uuid.New()

	err := s.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO payment_events
				(event_id, order_id, amount, status, currency, event_time)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, row.EventID, row.OrderID, row.Amount, row.Status, row.Currency, row.EventTime)
		return err
	})
	if err != nil {
		return PaymentEventRow{}, fmt.Errorf("failed to insert payment event: %w", err)
	}
	return row, nil
}

// InsertLogisticsEvent persists one logistics row; rows sharing an order_id
// form the shipping status history.
func (s *Store) InsertLogisticsEvent(ctx context.Context, row LogisticsEventRow) (LogisticsEventRow, error) {
	row.EventID = uuid.New()

	err := s.inTx(ctx, func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO logistics_events
				(event_id, order_id, status, event_time)
			VALUES ($1, $2, $3, $4)
		`, row.EventID, row.OrderID, row.Status, row.EventTime)
		return err
	})
	if err != nil {
		return LogisticsEventRow{}, fmt.Errorf("failed to insert logistics event: %w", err)
	}
	return row, nil
}

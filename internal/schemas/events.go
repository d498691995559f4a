package schemas

import "time"

// Request payloads for the six event types. Binding tags enforce the
// validation contract: required fields, closed enum sets, positive integer
// amounts. Pointer fields are nullable and round-trip as null.
//
// Timestamps must be RFC 3339 with an offset; bare dates fail to decode.
// Monetary values (amount, price_at_purchase) are integers in the smallest
// currency unit so no floating point is involved anywhere.

// UserBehaviorEventCreate is the POST /events/user-behavior payload.
type UserBehaviorEventCreate struct {
	EventType UserBehaviorEventType `json:"event_type" binding:"required,oneof=product_viewed product_searched"`
	UserID    *int64                `json:"user_id"` // nullable to support guest users
	EventTime time.Time             `json:"event_time" binding:"required"`
	ProductID int64                 `json:"product_id" binding:"required"`
	SessionID string                `json:"session_id" binding:"required"`
	Country   *string               `json:"country"`
	Source    *string               `json:"source"`
}

// CartEventCreate is the POST /events/cart payload.
// action is a free-form string; "add" and "remove" are the conventional
// values but no closed set is enforced.
type CartEventCreate struct {
	CorrelationID string    `json:"correlation_id" binding:"required"`
	UserID        *int64    `json:"user_id"`
	ProductID     int64     `json:"product_id" binding:"required"`
	Action        string    `json:"action" binding:"required"`
	Quantity      int64     `json:"quantity" binding:"required,gt=0"`
	EventTime     time.Time `json:"event_time" binding:"required"`
}

// OrderEventCreate is the POST /events/order payload. order_id maps to the
// invoice number and is unique across all order events.
type OrderEventCreate struct {
	OrderID   string      `json:"order_id" binding:"required"`
	UserID    *int64      `json:"user_id"`
	Status    OrderStatus `json:"status" binding:"required,oneof=pending confirmed shipped cancelled"`
	Country   *string     `json:"country"`
	EventTime time.Time   `json:"event_time" binding:"required"`
}

// OrderItemEventCreate is the POST /events/order-item payload. Many items
// may share one order_id. price_at_purchase is a pointer so a zero price is
// accepted while a missing field still fails.
type OrderItemEventCreate struct {
	OrderID         string    `json:"order_id" binding:"required"`
	ProductID       string    `json:"product_id" binding:"required"`
	Description     *string   `json:"description"`
	Quantity        int64     `json:"quantity" binding:"required,gt=0"`
	PriceAtPurchase *int64    `json:"price_at_purchase" binding:"required"`
	EventTime       time.Time `json:"event_time" binding:"required"`
}

// PaymentEventCreate is the POST /events/payment payload. status is
// free-form ("Success", "Refunded", ...); currency defaults to USD.
type PaymentEventCreate struct {
	OrderID   string    `json:"order_id" binding:"required"`
	Amount    int64     `json:"amount" binding:"required,gt=0"`
	Status    string    `json:"status" binding:"required"`
	Currency  string    `json:"currency" binding:"omitempty,max=3"`
	EventTime time.Time `json:"event_time" binding:"required"`
}

// DefaultCurrency is applied when a payment omits the currency field.
const DefaultCurrency = "USD"

// LogisticsEventCreate is the POST /events/logistics payload. Multiple rows
// per order_id form the shipping status history.
type LogisticsEventCreate struct {
	OrderID   string          `json:"order_id" binding:"required"`
	Status    LogisticsStatus `json:"status" binding:"required,oneof=picked_up in_transit out_for_delivery delivered delayed"`
	EventTime time.Time       `json:"event_time" binding:"required"`
}

// Stored event representations returned to callers: every caller-supplied
// field plus the server-generated identity (and ingestion timestamp where
// the table carries one).

type UserBehaviorEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	UserID     *int64    `json:"user_id"`
	EventTime  time.Time `json:"event_time"`
	IngestedAt time.Time `json:"ingested_at"`
	ProductID  int64     `json:"product_id"`
	SessionID  string    `json:"session_id"`
	Country    *string   `json:"country"`
	Source     *string   `json:"source"`
}

type CartEvent struct {
	EventID       string    `json:"event_id"`
	CorrelationID string    `json:"correlation_id"`
	UserID        *int64    `json:"user_id"`
	ProductID     int64     `json:"product_id"`
	Action        string    `json:"action"`
	Quantity      int64     `json:"quantity"`
	EventTime     time.Time `json:"event_time"`
}

type OrderEvent struct {
	EventID    string    `json:"event_id"`
	OrderID    string    `json:"order_id"`
	UserID     *int64    `json:"user_id"`
	Status     string    `json:"status"`
	Country    *string   `json:"country"`
	EventTime  time.Time `json:"event_time"`
	IngestedAt time.Time `json:"ingested_at"`
}

type OrderItemEvent struct {
	EventID         string    `json:"event_id"`
	OrderID         string    `json:"order_id"`
	ProductID       string    `json:"product_id"`
	Description     *string   `json:"description"`
	Quantity        int64     `json:"quantity"`
	PriceAtPurchase int64     `json:"price_at_purchase"`
	EventTime       time.Time `json:"event_time"`
}

type PaymentEvent struct {
	EventID   string    `json:"event_id"`
	OrderID   string    `json:"order_id"`
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"`
	Currency  string    `json:"currency"`
	EventTime time.Time `json:"event_time"`
}

type LogisticsEvent struct {
	EventID   string    `json:"event_id"`
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	EventTime time.Time `json:"event_time"`
}

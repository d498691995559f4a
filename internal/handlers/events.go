package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/insighthub/event-ingest-service/internal/metrics"
	"github.com/insighthub/event-ingest-service/internal/schemas"
	"github.com/insighthub/event-ingest-service/internal/store"
)

// EventStore is the persistence gateway the handlers depend on. One call is
// one unit of work: the row is durably committed before the call returns.
type EventStore interface {
	InsertUserBehaviorEvent(ctx context.Context, row store.UserBehaviorEventRow) (store.UserBehaviorEventRow, error)
	ListUserBehaviorEvents(ctx context.Context, limit int) ([]store.UserBehaviorEventRow, error)
	InsertCartEvent(ctx context.Context, row store.CartEventRow) (store.CartEventRow, error)
	InsertOrderEvent(ctx context.Context, row store.OrderEventRow) (store.OrderEventRow, error)
	InsertOrderItemEvent(ctx context.Context, row store.OrderItemEventRow) (store.OrderItemEventRow, error)
	InsertPaymentEvent(ctx context.Context, row store.PaymentEventRow) (store.PaymentEventRow, error)
	InsertLogisticsEvent(ctx context.Context, row store.LogisticsEventRow) (store.LogisticsEventRow, error)
}

// RegisterEventRoutes registers the ingestion endpoints under /events.
//
// Every POST follows the same contract: validate the payload, build a row,
// persist it in a single transaction, and echo the stored row including the
// generated event_id (and ingestion timestamp where the table carries one).
// 422 on validation failure, 409 on a duplicate order_id, 500 otherwise.
func RegisterEventRoutes(r gin.IRoutes, st EventStore) {
	r.POST("/events/user-behavior", createUserBehaviorEvent(st))
	r.GET("/events/user-behavior", listUserBehaviorEvents(st))
	r.POST("/events/cart", createCartEvent(st))
	r.POST("/events/order", createOrderEvent(st))
	r.POST("/events/order-item", createOrderItemEvent(st))
	r.POST("/events/payment", createPaymentEvent(st))
	r.POST("/events/logistics", createLogisticsEvent(st))
}

func createUserBehaviorEvent(st EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req schemas.UserBehaviorEventCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.EventsIngested.WithLabelValues("user_behavior", "invalid").Inc()
			respondValidationError(c, err)
			return
		}

		row, err := st.InsertUserBehaviorEvent(c.Request.Context(), store.UserBehaviorEventRow{
			EventType: string(req.EventType),
			UserID:    req.UserID,
			EventTime: req.EventTime,
			ProductID: req.ProductID,
			SessionID: req.SessionID,
			Country:   req.Country,
			Source:    req.Source,
		})
		if err != nil {
			metrics.EventsIngested.WithLabelValues("user_behavior", "error").Inc()
			respondStoreError(c, err)
			return
		}

		metrics.EventsIngested.WithLabelValues("user_behavior", "created").Inc()
		c.JSON(http.StatusCreated, userBehaviorResponse(row))
	}
}

func listUserBehaviorEvents(st EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := st.ListUserBehaviorEvents(c.Request.Context(), store.ListLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db query failed"})
			return
		}

		out := make([]schemas.UserBehaviorEvent, 0, len(rows))
		for _, row := range rows {
			out = append(out, userBehaviorResponse(row))
		}
		c.JSON(http.StatusOK, out)
	}
}

func createCartEvent(st EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req schemas.CartEventCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.EventsIngested.WithLabelValues("cart", "invalid").Inc()
			respondValidationError(c, err)
			return
		}

		row, err := st.InsertCartEvent(c.Request.Context(), store.CartEventRow{
			CorrelationID: req.CorrelationID,
			UserID:        req.UserID,
			ProductID:     req.ProductID,
			Action:        req.Action,
			Quantity:      req.Quantity,
			EventTime:     req.EventTime,
		})
		if err != nil {
			metrics.EventsIngested.WithLabelValues("cart", "error").Inc()
			respondStoreError(c, err)
			return
		}

		metrics.EventsIngested.WithLabelValues("cart", "created").Inc()
		c.JSON(http.StatusCreated, schemas.CartEvent{
			EventID:       row.EventID.String(),
			CorrelationID: row.CorrelationID,
			UserID:        row.UserID,
			ProductID:     row.ProductID,
			Action:        row.Action,
			Quantity:      row.Quantity,
			EventTime:     row.EventTime,
		})
	}
}

func createOrderEvent(st EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req schemas.OrderEventCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.EventsIngested.WithLabelValues("order", "invalid").Inc()
			respondValidationError(c, err)
			return
		}

		row, err := st.InsertOrderEvent(c.Request.Context(), store.OrderEventRow{
			OrderID:   req.OrderID,
			UserID:    req.UserID,
			Status:    string(req.Status),
			Country:   req.Country,
			EventTime: req.EventTime,
		})
		if err != nil {
			outcome := "error"
			if errors.Is(err, store.ErrDuplicateOrderID) {
				outcome = "conflict"
			}
			metrics.EventsIngested.WithLabelValues("order", outcome).Inc()
			respondStoreError(c, err)
			return
		}

		metrics.EventsIngested.WithLabelValues("order", "created").Inc()
		c.JSON(http.StatusCreated, schemas.OrderEvent{
			EventID:    row.EventID.String(),
			OrderID:    row.OrderID,
			UserID:     row.UserID,
			Status:     row.Status,
			Country:    row.Country,
			EventTime:  row.EventTime,
			IngestedAt: row.IngestedAt,
		})
	}
}

func createOrderItemEvent(st EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req schemas.OrderItemEventCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.EventsIngested.WithLabelValues("order_item", "invalid").Inc()
			respondValidationError(c, err)
			return
		}

		row, err := st.InsertOrderItemEvent(c.Request.Context(), store.OrderItemEventRow{
			OrderID:         req.OrderID,
			ProductID:       req.ProductID,
			Description:     req.Description,
			Quantity:        req.Quantity,
			PriceAtPurchase: *req.PriceAtPurchase,
			EventTime:       req.EventTime,
		})
		if err != nil {
			metrics.EventsIngested.WithLabelValues("order_item", "error").Inc()
			respondStoreError(c, err)
			return
		}

		metrics.EventsIngested.WithLabelValues("order_item", "created").Inc()
		c.JSON(http.StatusCreated, schemas.OrderItemEvent{
			EventID:         row.EventID.String(),
			OrderID:         row.OrderID,
			ProductID:       row.ProductID,
			Description:     row.Description,
			Quantity:        row.Quantity,
			PriceAtPurchase: row.PriceAtPurchase,
			EventTime:       row.EventTime,
		})
	}
}

func createPaymentEvent(st EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req schemas.PaymentEventCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.EventsIngested.WithLabelValues("payment", "invalid").Inc()
			respondValidationError(c, err)
			return
		}

		if req.Currency == "" {
			req.Currency = schemas.DefaultCurrency
		}

		row, err := st.InsertPaymentEvent(c.Request.Context(), store.PaymentEventRow{
			OrderID:   req.OrderID,
			Amount:    req.Amount,
			Status:    req.Status,
			Currency:  req.Currency,
			EventTime: req.EventTime,
		})
		if err != nil {
			metrics.EventsIngested.WithLabelValues("payment", "error").Inc()
			respondStoreError(c, err)
			return
		}

		metrics.EventsIngested.WithLabelValues("payment", "created").Inc()
		c.JSON(http.StatusCreated, schemas.PaymentEvent{
			EventID:   row.EventID.String(),
			OrderID:   row.OrderID,
			Amount:    row.Amount,
			Status:    row.Status,
			Currency:  row.Currency,
			EventTime: row.EventTime,
		})
	}
}

func createLogisticsEvent(st EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req schemas.LogisticsEventCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.EventsIngested.WithLabelValues("logistics", "invalid").Inc()
			respondValidationError(c, err)
			return
		}

		row, err := st.InsertLogisticsEvent(c.Request.Context(), store.LogisticsEventRow{
			OrderID:   req.OrderID,
			Status:    string(req.Status),
			EventTime: req.EventTime,
		})
		if err != nil {
			metrics.EventsIngested.WithLabelValues("logistics", "error").Inc()
			respondStoreError(c, err)
			return
		}

		metrics.EventsIngested.WithLabelValues("logistics", "created").Inc()
		c.JSON(http.StatusCreated, schemas.LogisticsEvent{
			EventID:   row.EventID.String(),
			OrderID:   row.OrderID,
			Status:    row.Status,
			EventTime: row.EventTime,
		})
	}
}

func userBehaviorResponse(row store.UserBehaviorEventRow) schemas.UserBehaviorEvent {
	return schemas.UserBehaviorEvent{
		EventID:    row.EventID.String(),
		EventType:  row.EventType,
		UserID:     row.UserID,
		EventTime:  row.EventTime,
		IngestedAt: row.IngestedAt,
		ProductID:  row.ProductID,
		SessionID:  row.SessionID,
		Country:    row.Country,
		Source:     row.Source,
	}
}

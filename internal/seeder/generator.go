package seeder

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// Entities lists every seedable event type, keyed by API path segment.
var Entities = []string{
	"user-behavior",
	"cart",
	"order",
	"order-item",
	"payment",
	"logistics",
}

var (
	behaviorTypes     = []string{"product_viewed", "product_searched"}
	cartActions       = []string{"add", "remove"}
	orderStatuses     = []string{"pending", "confirmed", "shipped", "cancelled"}
	paymentStatuses   = []string{"Success", "Refunded", "Failed"}
	logisticsStatuses = []string{"picked_up", "in_transit", "out_for_delivery", "delivered", "delayed"}
	sources           = []string{"web", "ios", "android"}
)

// GeneratePayload builds one fake payload for the given entity. Order IDs
// carry a nanosecond suffix so repeated runs never trip the uniqueness
// constraint on order events.
func GeneratePayload(entity string) (map[string]any, error) {
	eventTime := time.Now().Add(-time.Duration(rand.Intn(3600)) * time.Second).Format(time.RFC3339)

	switch entity {
	case "user-behavior":
		p := map[string]any{
			"event_type": pick(behaviorTypes),
			"event_time": eventTime,
			"product_id": gofakeit.Number(1000, 9999),
			"session_id": gofakeit.UUID(),
			"country":    gofakeit.CountryAbr(),
			"source":     pick(sources),
		}
		// Roughly a quarter of traffic is guests with no user_id.
		if rand.Intn(4) != 0 {
			p["user_id"] = gofakeit.Number(1, 100000)
		}
		return p, nil

	case "cart":
		p := map[string]any{
			"correlation_id": gofakeit.UUID(),
			"product_id":     gofakeit.Number(1000, 9999),
			"action":         pick(cartActions),
			"quantity":       gofakeit.Number(1, 5),
			"event_time":     eventTime,
		}
		if rand.Intn(4) != 0 {
			p["user_id"] = gofakeit.Number(1, 100000)
		}
		return p, nil

	case "order":
		return map[string]any{
			"order_id":   newOrderID(),
			"user_id":    gofakeit.Number(1, 100000),
			"status":     pick(orderStatuses),
			"country":    gofakeit.CountryAbr(),
			"event_time": eventTime,
		}, nil

	case "order-item":
		return map[string]any{
			"order_id":          newOrderID(),
			"product_id":        gofakeit.LetterN(8),
			"description":       gofakeit.ProductName(),
			"quantity":          gofakeit.Number(1, 10),
			"price_at_purchase": gofakeit.Number(99, 99999),
			"event_time":        eventTime,
		}, nil

	case "payment":
		return map[string]any{
			"order_id":   newOrderID(),
			"amount":     gofakeit.Number(99, 99999),
			"status":     pick(paymentStatuses),
			"currency":   gofakeit.CurrencyShort(),
			"event_time": eventTime,
		}, nil

	case "logistics":
		return map[string]any{
			"order_id":   newOrderID(),
			"status":     pick(logisticsStatuses),
			"event_time": eventTime,
		}, nil
	}

	return nil, fmt.Errorf("unknown entity %q", entity)
}

func newOrderID() string {
	return fmt.Sprintf("INV-%d-%04d", time.Now().UnixNano(), rand.Intn(10000))
}

func pick(values []string) string {
	return values[rand.Intn(len(values))]
}

package seeder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePayloadCoversAllEntities(t *testing.T) {
	required := map[string][]string{
		"user-behavior": {"event_type", "event_time", "product_id", "session_id"},
		"cart":          {"correlation_id", "product_id", "action", "quantity", "event_time"},
		"order":         {"order_id", "status", "event_time"},
		"order-item":    {"order_id", "product_id", "quantity", "price_at_purchase", "event_time"},
		"payment":       {"order_id", "amount", "status", "event_time"},
		"logistics":     {"order_id", "status", "event_time"},
	}

	for _, entity := range Entities {
		p, err := GeneratePayload(entity)
		require.NoError(t, err, entity)
		for _, field := range required[entity] {
			assert.Contains(t, p, field, "%s payload", entity)
		}

		// event_time must be RFC 3339 with an offset or the API rejects it.
		_, err = time.Parse(time.RFC3339, p["event_time"].(string))
		assert.NoError(t, err, "%s event_time", entity)
	}
}

func TestGeneratePayloadUnknownEntity(t *testing.T) {
	_, err := GeneratePayload("wishlist")
	require.Error(t, err)
}

func TestOrderIDsDoNotRepeat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		p, err := GeneratePayload("order")
		require.NoError(t, err)
		id := p["order_id"].(string)
		assert.False(t, seen[id], "order_id %s repeated", id)
		seen[id] = true
	}
}

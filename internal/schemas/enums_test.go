package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserBehaviorEventTypeValid(t *testing.T) {
	assert.True(t, ProductViewed.Valid())
	assert.True(t, ProductSearched.Valid())
	assert.False(t, UserBehaviorEventType("product_purchased").Valid())
	assert.False(t, UserBehaviorEventType("PRODUCT_VIEWED").Valid())
	assert.False(t, UserBehaviorEventType("").Valid())
}

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderConfirmed, OrderShipped, OrderCancelled} {
		assert.True(t, s.Valid(), "status %q", s)
	}
	// "delivered" belongs to the logistics set, not orders.
	assert.False(t, OrderStatus("delivered").Valid())
	assert.False(t, OrderStatus("Pending").Valid())
}

func TestLogisticsStatusValid(t *testing.T) {
	for _, s := range []LogisticsStatus{
		LogisticsPickedUp, LogisticsInTransit, LogisticsOutForDelivery,
		LogisticsDelivered, LogisticsDelayed,
	} {
		assert.True(t, s.Valid(), "status %q", s)
	}
	// "shipped" belongs to the order set, not logistics.
	assert.False(t, LogisticsStatus("shipped").Valid())
}

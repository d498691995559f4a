package schemas

// Closed enum sets enforced at the validation boundary. The storage layer
// keeps its own representation (TEXT columns with CHECK constraints) and
// handlers translate between the two explicitly.

// UserBehaviorEventType classifies a user behavior event.
type UserBehaviorEventType string

const (
	ProductViewed   UserBehaviorEventType = "product_viewed"
	ProductSearched UserBehaviorEventType = "product_searched"
)

// Valid reports whether t is a member of the closed set.
func (t UserBehaviorEventType) Valid() bool {
	switch t {
	case ProductViewed, ProductSearched:
		return true
	}
	return false
}

// OrderStatus is the lifecycle state carried by an order event.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is a member of the closed set.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderCancelled:
		return true
	}
	return false
}

// LogisticsStatus is a shipping milestone carried by a logistics event.
type LogisticsStatus string

const (
	LogisticsPickedUp       LogisticsStatus = "picked_up"
	LogisticsInTransit      LogisticsStatus = "in_transit"
	LogisticsOutForDelivery LogisticsStatus = "out_for_delivery"
	LogisticsDelivered      LogisticsStatus = "delivered"
	LogisticsDelayed        LogisticsStatus = "delayed"
)

// Valid reports whether s is a member of the closed set.
func (s LogisticsStatus) Valid() bool {
	switch s {
	case LogisticsPickedUp, LogisticsInTransit, LogisticsOutForDelivery,
		LogisticsDelivered, LogisticsDelayed:
		return true
	}
	return false
}

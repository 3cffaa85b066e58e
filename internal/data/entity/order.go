package entity

const (
	OrderStatusOnProgress        = "On Progress"
	OrderStatusCompleted         = "Completed"
	OrderStatusWaitingForPayment = "Waiting for Payment"
	OrderStatusBeingDelivered    = "Being Delivered"
)

// OrderStatuses lists the states an admin can move an order into.
var OrderStatuses = []string{
	OrderStatusOnProgress,
	OrderStatusCompleted,
	OrderStatusWaitingForPayment,
	OrderStatusBeingDelivered,
}

func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Order is stored under ordermaster/{orderId}. Field names keep the camelCase
// keys the mobile ordering app writes.
type Order struct {
	OrderID      string  `json:"orderId,omitempty"`
	ShopID       string  `json:"shopId"`
	CustomerName string  `json:"customerName,omitempty"`
	OrderStatus  string  `json:"orderStatus"`
	OrderDate    string  `json:"orderDate"`
	Price        float64 `json:"price"`
}

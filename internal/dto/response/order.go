package response

import "elaundry/internal/data/entity"

type OrderResponse struct {
	OrderID      string  `json:"orderId"`
	ShopID       string  `json:"shopId"`
	CustomerName string  `json:"customerName,omitempty"`
	OrderStatus  string  `json:"orderStatus"`
	OrderDate    string  `json:"orderDate"`
	Price        float64 `json:"price"`
}

type SalesPoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// SalesSummaryResponse backs the dashboard revenue chart: one point per
// completed order in the month plus the total.
type SalesSummaryResponse struct {
	Month        int          `json:"month"`
	Year         int          `json:"year"`
	TotalRevenue float64      `json:"total_revenue"`
	Points       []SalesPoint `json:"points"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		OrderID:      order.OrderID,
		ShopID:       order.ShopID,
		CustomerName: order.CustomerName,
		OrderStatus:  order.OrderStatus,
		OrderDate:    order.OrderDate,
		Price:        order.Price,
	}
}

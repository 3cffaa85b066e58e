package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"elaundry/internal/data/entity"
	"elaundry/internal/data/repository"
	"elaundry/internal/dto/request"
	"elaundry/internal/dto/response"
	"elaundry/pkg/utils"

	"go.uber.org/zap"
)

type OrderService interface {
	ActiveOrders(ctx context.Context, shopID string) ([]response.OrderResponse, error)
	CompletedOrders(ctx context.Context, shopID string) ([]response.OrderResponse, error)
	UpdateStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) error
	SalesSummary(ctx context.Context, shopID string, month, year int) (*response.SalesSummaryResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{repo: repo, log: log}
}

func (s *orderService) ActiveOrders(ctx context.Context, shopID string) ([]response.OrderResponse, error) {
	return s.ordersByShop(ctx, shopID, func(o *entity.Order) bool {
		return o.OrderStatus != entity.OrderStatusCompleted
	})
}

func (s *orderService) CompletedOrders(ctx context.Context, shopID string) ([]response.OrderResponse, error) {
	return s.ordersByShop(ctx, shopID, func(o *entity.Order) bool {
		return o.OrderStatus == entity.OrderStatusCompleted
	})
}

func (s *orderService) ordersByShop(ctx context.Context, shopID string, keep func(*entity.Order) bool) ([]response.OrderResponse, error) {
	if shopID == "" {
		return nil, ErrShopNotLinked
	}

	orders, err := s.repo.Order.ListByShop(ctx, shopID)
	if err != nil {
		s.log.Error("Failed to list orders", zap.Error(err), zap.String("shop_id", shopID))
		return nil, fmt.Errorf("list orders: %w", err)
	}

	result := make([]response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		if keep(order) {
			result = append(result, response.OrderToResponse(order))
		}
	}
	return result, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update order status validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if !entity.ValidOrderStatus(req.Status) {
		return ErrInvalidOrderStatus
	}

	// 2. Patch just the status field
	if err := s.repo.Order.UpdateStatus(ctx, orderID, req.Status); err != nil {
		s.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", orderID),
			zap.String("status", req.Status))
		return fmt.Errorf("update order status: %w", err)
	}

	s.log.Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("status", req.Status))
	return nil
}

// SalesSummary totals completed orders for one calendar month, bucketed per
// day for charting. Orders whose date cannot be parsed are skipped rather
// than failing the whole report.
func (s *orderService) SalesSummary(ctx context.Context, shopID string, month, year int) (*response.SalesSummaryResponse, error) {
	if shopID == "" {
		return nil, ErrShopNotLinked
	}

	orders, err := s.repo.Order.ListByShop(ctx, shopID)
	if err != nil {
		s.log.Error("Failed to list orders for sales summary", zap.Error(err), zap.String("shop_id", shopID))
		return nil, fmt.Errorf("list orders: %w", err)
	}

	daily := make(map[string]float64)
	var total float64
	for _, order := range orders {
		if order.OrderStatus != entity.OrderStatusCompleted {
			continue
		}
		when, ok := parseOrderDate(order.OrderDate)
		if !ok {
			s.log.Warn("Skipping order with unparseable date",
				zap.String("order_id", order.OrderID),
				zap.String("order_date", order.OrderDate))
			continue
		}
		if int(when.Month()) != month || when.Year() != year {
			continue
		}
		day := when.Format("2006-01-02")
		daily[day] += order.Price
		total += order.Price
	}

	points := make([]response.SalesPoint, 0, len(daily))
	for day, price := range daily {
		points = append(points, response.SalesPoint{Date: day, Price: price})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	return &response.SalesSummaryResponse{
		Month:        month,
		Year:         year,
		TotalRevenue: total,
		Points:       points,
	}, nil
}

// Order dates arrive in a few shapes depending on which client wrote them.
var orderDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"1/2/2006, 3:04:05 PM",
}

func parseOrderDate(value string) (time.Time, bool) {
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

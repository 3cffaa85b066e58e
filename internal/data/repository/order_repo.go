package repository

import (
	"context"
	"fmt"
	"sort"

	"elaundry/internal/clients/treedb"
	"elaundry/internal/data/entity"

	"go.uber.org/zap"
)

type OrderRepository interface {
	ListByShop(ctx context.Context, shopID string) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}

type orderRepository struct {
	tree *treedb.Client
	log  *zap.Logger
}

func NewOrderRepository(tree *treedb.Client, log *zap.Logger) OrderRepository {
	return &orderRepository{
		tree: tree,
		log:  log.With(zap.String("repository", "order")),
	}
}

// ListByShop reads the whole ordermaster node and filters by shop. The tree
// database has no server-side queries, so this mirrors what every dashboard
// screen does.
func (r *orderRepository) ListByShop(ctx context.Context, shopID string) ([]*entity.Order, error) {
	var nodes map[string]entity.Order
	found, err := r.tree.Get(ctx, "ordermaster", &nodes)
	if err != nil {
		r.log.Error("Failed to list orders",
			zap.Error(err),
			zap.String("shop_id", shopID),
		)
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if !found {
		return nil, nil
	}

	orders := make([]*entity.Order, 0)
	for id, order := range nodes {
		if order.ShopID != shopID {
			continue
		}
		o := order
		o.OrderID = id
		orders = append(orders, &o)
	}

	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderID < orders[j].OrderID })
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	err := r.tree.Update(ctx, "ordermaster/"+orderID, map[string]any{
		"orderStatus": status,
	})
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", orderID),
			zap.String("status", status),
		)
		return fmt.Errorf("update order %s status: %w", orderID, err)
	}

	return nil
}

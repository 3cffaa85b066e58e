package repository

import (
	"context"
	"fmt"
	"sort"

	"elaundry/internal/clients/treedb"
	"elaundry/internal/data/entity"

	"go.uber.org/zap"
)

type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	Find(ctx context.Context, shopID string) (*entity.Shop, error)
	FindAll(ctx context.Context) ([]*entity.Shop, error)
	Remove(ctx context.Context, shopID string) error
}

type shopRepository struct {
	tree *treedb.Client
	log  *zap.Logger
}

func NewShopRepository(tree *treedb.Client, log *zap.Logger) ShopRepository {
	return &shopRepository{
		tree: tree,
		log:  log.With(zap.String("repository", "shop")),
	}
}

func shopPath(shopID string) string {
	return "laundry_shops/" + shopID
}

func (r *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	if err := r.tree.Set(ctx, shopPath(shop.ShopID), shop); err != nil {
		r.log.Error("Failed to create shop record",
			zap.Error(err),
			zap.String("shop_id", shop.ShopID),
		)
		return fmt.Errorf("create shop %s: %w", shop.ShopID, err)
	}

	return nil
}

func (r *shopRepository) Find(ctx context.Context, shopID string) (*entity.Shop, error) {
	var shop entity.Shop
	found, err := r.tree.Get(ctx, shopPath(shopID), &shop)
	if err != nil {
		r.log.Error("Failed to find shop record",
			zap.Error(err),
			zap.String("shop_id", shopID),
		)
		return nil, fmt.Errorf("find shop %s: %w", shopID, err)
	}
	if !found {
		return nil, nil
	}

	shop.ShopID = shopID
	return &shop, nil
}

// FindAll reads the whole laundry_shops node, keyed by shop id. The tree key
// wins over any shop_id field stored in the value.
func (r *shopRepository) FindAll(ctx context.Context) ([]*entity.Shop, error) {
	var nodes map[string]entity.Shop
	found, err := r.tree.Get(ctx, "laundry_shops", &nodes)
	if err != nil {
		r.log.Error("Failed to list shops", zap.Error(err))
		return nil, fmt.Errorf("list shops: %w", err)
	}
	if !found {
		return nil, nil
	}

	shops := make([]*entity.Shop, 0, len(nodes))
	for id, shop := range nodes {
		s := shop
		s.ShopID = id
		shops = append(shops, &s)
	}

	sort.Slice(shops, func(i, j int) bool { return shops[i].ShopID < shops[j].ShopID })
	return shops, nil
}

func (r *shopRepository) Remove(ctx context.Context, shopID string) error {
	if err := r.tree.Remove(ctx, shopPath(shopID)); err != nil {
		r.log.Error("Failed to remove shop record",
			zap.Error(err),
			zap.String("shop_id", shopID),
		)
		return fmt.Errorf("remove shop %s: %w", shopID, err)
	}

	return nil
}

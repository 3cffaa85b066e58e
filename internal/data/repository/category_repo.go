package repository

import (
	"context"
	"fmt"
	"sort"

	"elaundry/internal/clients/treedb"
	"elaundry/internal/data/entity"

	"go.uber.org/zap"
)

type CategoryRepository interface {
	List(ctx context.Context, shopID string) ([]*entity.Category, error)
	Set(ctx context.Context, shopID string, category *entity.Category) error
	Update(ctx context.Context, shopID, name string, fields map[string]any) error
	Remove(ctx context.Context, shopID, name string) error
}

type categoryRepository struct {
	tree *treedb.Client
	log  *zap.Logger
}

func NewCategoryRepository(tree *treedb.Client, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		tree: tree,
		log:  log.With(zap.String("repository", "category")),
	}
}

func categoryPath(shopID, name string) string {
	return "laundry_shops/" + shopID + "/categories/" + name
}

func (r *categoryRepository) List(ctx context.Context, shopID string) ([]*entity.Category, error) {
	var nodes map[string]entity.Category
	found, err := r.tree.Get(ctx, "laundry_shops/"+shopID+"/categories", &nodes)
	if err != nil {
		r.log.Error("Failed to list categories",
			zap.Error(err),
			zap.String("shop_id", shopID),
		)
		return nil, fmt.Errorf("list categories for shop %s: %w", shopID, err)
	}
	if !found {
		return nil, nil
	}

	categories := make([]*entity.Category, 0, len(nodes))
	for name, category := range nodes {
		c := category
		c.CategoryName = name
		categories = append(categories, &c)
	}

	sort.Slice(categories, func(i, j int) bool {
		return categories[i].CategoryName < categories[j].CategoryName
	})
	return categories, nil
}

func (r *categoryRepository) Set(ctx context.Context, shopID string, category *entity.Category) error {
	if err := r.tree.Set(ctx, categoryPath(shopID, category.CategoryName), category); err != nil {
		r.log.Error("Failed to set category",
			zap.Error(err),
			zap.String("shop_id", shopID),
			zap.String("category", category.CategoryName),
		)
		return fmt.Errorf("set category %s: %w", category.CategoryName, err)
	}

	return nil
}

func (r *categoryRepository) Update(ctx context.Context, shopID, name string, fields map[string]any) error {
	if err := r.tree.Update(ctx, categoryPath(shopID, name), fields); err != nil {
		r.log.Error("Failed to update category",
			zap.Error(err),
			zap.String("shop_id", shopID),
			zap.String("category", name),
		)
		return fmt.Errorf("update category %s: %w", name, err)
	}

	return nil
}

func (r *categoryRepository) Remove(ctx context.Context, shopID, name string) error {
	if err := r.tree.Remove(ctx, categoryPath(shopID, name)); err != nil {
		r.log.Error("Failed to remove category",
			zap.Error(err),
			zap.String("shop_id", shopID),
			zap.String("category", name),
		)
		return fmt.Errorf("remove category %s: %w", name, err)
	}

	return nil
}

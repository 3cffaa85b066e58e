package usecase

import (
	"context"
	"fmt"

	"elaundry/internal/data/entity"
	"elaundry/internal/data/repository"
	"elaundry/internal/dto/request"
	"elaundry/internal/dto/response"
	"elaundry/pkg/utils"

	"go.uber.org/zap"
)

type CategoryService interface {
	List(ctx context.Context, shopID string) (*response.CategoryListResponse, error)
	Add(ctx context.Context, shopID string, req *request.AddCategoryRequest) (*response.CategoryResponse, error)
	Update(ctx context.Context, shopID, name string, req *request.UpdateCategoryRequest) error
	Delete(ctx context.Context, shopID, name string) error
}

type categoryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCategoryService(repo *repository.Repository, log *zap.Logger) CategoryService {
	return &categoryService{repo: repo, log: log}
}

func (s *categoryService) List(ctx context.Context, shopID string) (*response.CategoryListResponse, error) {
	if shopID == "" {
		return nil, ErrShopNotLinked
	}

	categories, err := s.repo.Category.List(ctx, shopID)
	if err != nil {
		s.log.Error("Failed to list categories", zap.Error(err), zap.String("shop_id", shopID))
		return nil, fmt.Errorf("list categories: %w", err)
	}

	result := &response.CategoryListResponse{
		Categories: make([]response.CategoryResponse, 0, len(categories)),
		Presets:    entity.PredefinedCategories,
	}
	for _, cat := range categories {
		result.Categories = append(result.Categories, response.CategoryToResponse(cat))
	}
	return result, nil
}

func (s *categoryService) Add(ctx context.Context, shopID string, req *request.AddCategoryRequest) (*response.CategoryResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if shopID == "" {
		return nil, ErrShopNotLinked
	}

	// 2. Write the category under the shop node, keyed by name
	category := &entity.Category{
		CategoryName: req.CategoryName,
		Price:        req.Price,
		Description:  req.Description,
	}
	if err := s.repo.Category.Set(ctx, shopID, category); err != nil {
		s.log.Error("Failed to add category",
			zap.Error(err),
			zap.String("shop_id", shopID),
			zap.String("category", req.CategoryName))
		return nil, fmt.Errorf("add category: %w", err)
	}

	s.log.Info("Category added",
		zap.String("shop_id", shopID),
		zap.String("category", req.CategoryName))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (s *categoryService) Update(ctx context.Context, shopID, name string, req *request.UpdateCategoryRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update category validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if shopID == "" {
		return ErrShopNotLinked
	}

	fields := map[string]any{
		"price":       req.Price,
		"description": req.Description,
	}
	if err := s.repo.Category.Update(ctx, shopID, name, fields); err != nil {
		s.log.Error("Failed to update category",
			zap.Error(err),
			zap.String("shop_id", shopID),
			zap.String("category", name))
		return fmt.Errorf("update category: %w", err)
	}

	s.log.Info("Category updated", zap.String("shop_id", shopID), zap.String("category", name))
	return nil
}

func (s *categoryService) Delete(ctx context.Context, shopID, name string) error {
	if shopID == "" {
		return ErrShopNotLinked
	}

	if err := s.repo.Category.Remove(ctx, shopID, name); err != nil {
		s.log.Error("Failed to delete category",
			zap.Error(err),
			zap.String("shop_id", shopID),
			zap.String("category", name))
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.Info("Category deleted", zap.String("shop_id", shopID), zap.String("category", name))
	return nil
}

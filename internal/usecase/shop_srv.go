package usecase

import (
	"context"
	"fmt"

	"elaundry/internal/clients/identity"
	"elaundry/internal/data/repository"
	"elaundry/internal/dto/response"

	"go.uber.org/zap"
)

type ShopService interface {
	ListShops(ctx context.Context) ([]response.ShopResponse, error)
	DeleteShopAdmin(ctx context.Context, userID, shopID string) error
}

type shopService struct {
	repo     *repository.Repository
	identity identity.Provider
	log      *zap.Logger
}

func NewShopService(repo *repository.Repository, idp identity.Provider, log *zap.Logger) ShopService {
	return &shopService{
		repo:     repo,
		identity: idp,
		log:      log,
	}
}

func (s *shopService) ListShops(ctx context.Context) ([]response.ShopResponse, error) {
	shops, err := s.repo.Shop.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list shops", zap.Error(err))
		return nil, fmt.Errorf("list shops: %w", err)
	}

	result := make([]response.ShopResponse, 0, len(shops))
	for _, shop := range shops {
		result = append(result, response.ShopToResponse(shop))
	}
	return result, nil
}

// DeleteShopAdmin removes a shop admin and their tenant in order: identity
// account, user record, shop record. Each step only runs after the previous
// one succeeded, so a partial failure leaves at most trailing records, never
// a dangling identity that could still sign in.
func (s *shopService) DeleteShopAdmin(ctx context.Context, userID, shopID string) error {
	// 1. Reject incomplete input before touching any external system
	if userID == "" || shopID == "" {
		return ErrMissingIdentifiers
	}

	// 2. Revoke the identity account
	if err := s.identity.DeleteAccount(ctx, userID); err != nil {
		s.log.Error("Failed to delete identity account",
			zap.Error(err),
			zap.String("user_id", userID))
		return fmt.Errorf("delete identity account: %w", err)
	}

	// 3. Remove the user record
	if err := s.repo.Account.Remove(ctx, userID); err != nil {
		s.log.Error("Orphan candidate: identity deleted but user record remains",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("shop_id", shopID))
		return fmt.Errorf("remove user record: %w", err)
	}

	// 4. Remove the shop record
	if err := s.repo.Shop.Remove(ctx, shopID); err != nil {
		s.log.Error("Orphan candidate: account deleted but shop record remains",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("shop_id", shopID))
		return fmt.Errorf("remove shop record: %w", err)
	}

	s.log.Info("Shop admin deleted",
		zap.String("user_id", userID),
		zap.String("shop_id", shopID))
	return nil
}

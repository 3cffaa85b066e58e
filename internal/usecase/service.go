package usecase

import (
	"elaundry/internal/clients/identity"
	"elaundry/internal/data/repository"
	"elaundry/pkg/utils"

	"go.uber.org/zap"
)

// Service bundles every use case behind one constructor so wiring stays in
// one place.
type Service struct {
	Auth     AuthService
	Session  SessionService
	Shop     ShopService
	Category CategoryService
	Order    OrderService
}

func NewService(
	repo *repository.Repository,
	idp identity.Provider,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, idp, config, log),
		Session:  NewSessionService(repo, log),
		Shop:     NewShopService(repo, idp, log),
		Category: NewCategoryService(repo, log),
		Order:    NewOrderService(repo, log),
	}
}

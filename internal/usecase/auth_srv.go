package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"elaundry/internal/clients/identity"
	"elaundry/internal/data/entity"
	"elaundry/internal/data/repository"
	"elaundry/internal/dto/request"
	"elaundry/internal/dto/response"
	"elaundry/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo     *repository.Repository
	identity identity.Provider
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	idp identity.Provider,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:     repo,
		identity: idp,
		config:   config,
		log:      log,
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Authenticate against the identity provider. Bad password and
	// provider outage surface identically to the user.
	uid, err := s.identity.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		s.log.Warn("Sign-in failed", zap.Error(err), zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	// 3. Fetch the account record keyed by the provider-issued id
	account, err := s.repo.Account.Find(ctx, uid)
	if err != nil {
		s.log.Error("Failed to fetch account record", zap.Error(err), zap.String("user_id", uid))
		return nil, fmt.Errorf("fetch account record: %w", err)
	}
	if account == nil {
		s.log.Warn("Authenticated identity has no account record", zap.String("user_id", uid))
		return nil, ErrAccountNotFound
	}

	// 4. Populate the session context
	sess := NewSessionContext(s.repo.Session, s.sessionTTL())
	if err := sess.SetRole(ctx, account.Role); err != nil {
		return nil, fmt.Errorf("populate session: %w", err)
	}
	if err := sess.SetUsername(ctx, account.Name); err != nil {
		return nil, fmt.Errorf("populate session: %w", err)
	}
	if err := sess.SetUserID(ctx, uid); err != nil {
		return nil, fmt.Errorf("populate session: %w", err)
	}

	// An admin account without a shop linkage is a configuration problem,
	// not a login failure: warn and let the user in.
	var warning string
	if account.LaundryShopID != "" {
		if err := sess.SetShopID(ctx, account.LaundryShopID); err != nil {
			return nil, fmt.Errorf("populate session: %w", err)
		}
	} else if account.Role == entity.RoleAdmin {
		warning = "Laundry Shop ID not found for this user."
		s.log.Warn("Admin account has no shop linkage", zap.String("user_id", uid))
	}

	// 5. Persist. The sync rule never fires for superadmins (no shop id),
	// so the write happens explicitly here.
	if err := sess.Persist(ctx); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", uid),
		zap.String("role", account.Role))

	return &response.LoginResponse{
		Token:     sess.Token(),
		ExpiresAt: time.Now().Add(s.sessionTTL()),
		UserID:    sess.UserID(),
		ShopID:    sess.ShopID(),
		Role:      sess.Role(),
		Username:  sess.Username(),
		Redirect:  RedirectFor(sess.Role()),
		Warning:   warning,
	}, nil
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Create the identity account. Nothing is written to the tree
	// database until this succeeds.
	uid, err := s.identity.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrEmailInUse) {
			return nil, ErrEmailInUse
		}
		s.log.Error("Failed to create identity account", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create identity account: %w", err)
	}

	now := time.Now().Format(time.RFC3339)
	shopID := utils.GenerateShopID()

	shop := &entity.Shop{
		ShopID:    shopID,
		Name:      req.Name,
		Address:   fmt.Sprintf("%s, %s, %s", req.Address, req.City, req.Country),
		Phone:     req.Phone,
		AdminID:   uid,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Status:    entity.ShopStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 3. Write the tenant record
	if err := s.repo.Shop.Create(ctx, shop); err != nil {
		s.compensateIdentity(ctx, uid)
		return nil, fmt.Errorf("create shop record: %w", err)
	}

	account := &entity.Account{
		UserID:        uid,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Role:          entity.RoleAdmin,
		LaundryShopID: shopID,
		CreatedAt:     now,
	}

	// 4. Write the account record; on failure undo the tenant write so no
	// orphaned shop remains.
	if err := s.repo.Account.Create(ctx, account); err != nil {
		if cerr := s.repo.Shop.Remove(ctx, shopID); cerr != nil {
			s.log.Error("Orphan candidate: shop record left behind after failed account write",
				zap.Error(cerr),
				zap.String("shop_id", shopID),
				zap.String("user_id", uid))
		}
		s.compensateIdentity(ctx, uid)
		return nil, fmt.Errorf("create account record: %w", err)
	}

	s.log.Info("Shop registered",
		zap.String("user_id", uid),
		zap.String("shop_id", shopID),
		zap.String("email", req.Email))

	return &response.RegisterResponse{
		UserID: uid,
		ShopID: shopID,
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	sess, err := LoadSessionContext(ctx, s.repo.Session, token)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if sess == nil {
		return ErrSessionNotFound
	}

	if err := sess.Logout(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.log.Info("User logged out", zap.String("user_id", sess.UserID()))
	return nil
}

// compensateIdentity removes an identity account created during a
// registration that could not complete. Failure leaves an orphan the
// operator has to clean up, so it is logged loudly.
func (s *authService) compensateIdentity(ctx context.Context, uid string) {
	if err := s.identity.DeleteAccount(ctx, uid); err != nil {
		s.log.Error("Orphan candidate: identity account left behind after failed registration",
			zap.Error(err),
			zap.String("user_id", uid))
	}
}

func (s *authService) sessionTTL() time.Duration {
	hours := s.config.Session.TTLHours
	if hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

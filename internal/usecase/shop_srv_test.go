package usecase

import (
	"context"
	"errors"
	"testing"

	"elaundry/internal/data/entity"
	"elaundry/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newShopFixture(idp *mockIdentity) (*repository.Repository, ShopService) {
	repo := &repository.Repository{
		Session: newMemSessionStore(),
		Account: newMemAccountRepo(),
		Shop:    newMemShopRepo(),
	}
	return repo, NewShopService(repo, idp, zap.NewNop())
}

func seedTenant(repo *repository.Repository, userID, shopID string) {
	repo.Account.(*memAccountRepo).accounts[userID] = &entity.Account{
		UserID:        userID,
		Role:          entity.RoleAdmin,
		LaundryShopID: shopID,
	}
	repo.Shop.(*memShopRepo).shops[shopID] = &entity.Shop{
		ShopID:  shopID,
		AdminID: userID,
	}
}

func TestShopService_DeleteShopAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("missing identifiers rejected before any call", func(t *testing.T) {
		idp := &mockIdentity{}
		repo, svc := newShopFixture(idp)
		seedTenant(repo, "uid-1", "shop-1")

		assert.ErrorIs(t, svc.DeleteShopAdmin(ctx, "", "shop-1"), ErrMissingIdentifiers)
		assert.ErrorIs(t, svc.DeleteShopAdmin(ctx, "uid-1", ""), ErrMissingIdentifiers)

		assert.Empty(t, idp.deleted, "identity provider must not be called")
		assert.NotNil(t, repo.Account.(*memAccountRepo).accounts["uid-1"])
	})

	t.Run("removes identity, account and shop in order", func(t *testing.T) {
		idp := &mockIdentity{}
		repo, svc := newShopFixture(idp)
		seedTenant(repo, "uid-1", "shop-1")

		require.NoError(t, svc.DeleteShopAdmin(ctx, "uid-1", "shop-1"))

		assert.Equal(t, []string{"uid-1"}, idp.deleted)
		assert.Empty(t, repo.Account.(*memAccountRepo).accounts)
		assert.Empty(t, repo.Shop.(*memShopRepo).shops)
	})

	t.Run("identity failure leaves records untouched", func(t *testing.T) {
		idp := &mockIdentity{deleteError: errors.New("provider unavailable")}
		repo, svc := newShopFixture(idp)
		seedTenant(repo, "uid-1", "shop-1")

		err := svc.DeleteShopAdmin(ctx, "uid-1", "shop-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "provider unavailable")

		assert.NotNil(t, repo.Account.(*memAccountRepo).accounts["uid-1"])
		assert.NotNil(t, repo.Shop.(*memShopRepo).shops["shop-1"])
	})

	t.Run("shop remove failure surfaces after account removal", func(t *testing.T) {
		idp := &mockIdentity{}
		repo, svc := newShopFixture(idp)
		seedTenant(repo, "uid-1", "shop-1")
		repo.Shop.(*memShopRepo).removeErr = errors.New("tree database unreachable")

		err := svc.DeleteShopAdmin(ctx, "uid-1", "shop-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tree database unreachable")

		assert.Empty(t, repo.Account.(*memAccountRepo).accounts, "account removal already happened")
		assert.NotNil(t, repo.Shop.(*memShopRepo).shops["shop-1"], "orphaned shop remains for cleanup")
	})
}

func TestShopService_ListShops(t *testing.T) {
	idp := &mockIdentity{}
	repo, svc := newShopFixture(idp)
	seedTenant(repo, "uid-1", "shop-1")
	seedTenant(repo, "uid-2", "shop-2")

	shops, err := svc.ListShops(context.Background())
	require.NoError(t, err)
	assert.Len(t, shops, 2)
}

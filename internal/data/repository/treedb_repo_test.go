package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"elaundry/internal/clients/treedb"
	"elaundry/internal/data/entity"
	"elaundry/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// treeFixture serves a fixed JSON tree the way the hosted database does:
// GET on a node path returns the subtree, absent nodes return null.
func treeFixture(t *testing.T, nodes map[string]any) *treedb.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Path[1 : len(r.URL.Path)-len(".json")]
		node, ok := nodes[key]
		if !ok {
			w.Write([]byte("null"))
			return
		}
		json.NewEncoder(w).Encode(node)
	}))
	t.Cleanup(server.Close)

	return treedb.New(utils.TreeDBConfig{BaseURL: server.URL})
}

func TestAccountRepository_Find(t *testing.T) {
	ctx := context.Background()
	tree := treeFixture(t, map[string]any{
		"users/uid-1": map[string]any{
			"name":            "Budi",
			"email":           "budi@laundry.test",
			"user_role":       entity.RoleAdmin,
			"laundry_shop_id": "shop-1",
		},
	})
	repo := NewAccountRepository(tree, zap.NewNop())

	t.Run("existing record", func(t *testing.T) {
		account, err := repo.Find(ctx, "uid-1")
		require.NoError(t, err)
		require.NotNil(t, account)
		assert.Equal(t, "Budi", account.Name)
		assert.Equal(t, entity.RoleAdmin, account.Role)
		assert.Equal(t, "shop-1", account.LaundryShopID)
	})

	t.Run("absent record yields nil without error", func(t *testing.T) {
		account, err := repo.Find(ctx, "uid-ghost")
		require.NoError(t, err)
		assert.Nil(t, account)
	})
}

func TestOrderRepository_ListByShop(t *testing.T) {
	ctx := context.Background()
	tree := treeFixture(t, map[string]any{
		"ordermaster": map[string]any{
			"o1": map[string]any{"shopId": "shop-1", "orderStatus": entity.OrderStatusOnProgress, "price": 15000},
			"o2": map[string]any{"shopId": "shop-2", "orderStatus": entity.OrderStatusCompleted, "price": 9000},
			"o3": map[string]any{"shopId": "shop-1", "orderStatus": entity.OrderStatusCompleted, "price": 20000},
		},
	})
	repo := NewOrderRepository(tree, zap.NewNop())

	orders, err := repo.ListByShop(ctx, "shop-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// Keys become order ids, sorted for stable listings.
	assert.Equal(t, "o1", orders[0].OrderID)
	assert.Equal(t, "o3", orders[1].OrderID)
	assert.Equal(t, 20000.0, orders[1].Price)
}

func TestShopRepository_FindAll(t *testing.T) {
	ctx := context.Background()
	tree := treeFixture(t, map[string]any{
		"laundry_shops": map[string]any{
			"shop-2": map[string]any{"name": "Laundry Kilat", "admin_id": "uid-2"},
			"shop-1": map[string]any{"name": "Laundry Berkah", "admin_id": "uid-1"},
		},
	})
	repo := NewShopRepository(tree, zap.NewNop())

	shops, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, shops, 2)
	assert.Equal(t, "shop-1", shops[0].ShopID)
	assert.Equal(t, "Laundry Berkah", shops[0].Name)
	assert.Equal(t, "shop-2", shops[1].ShopID)
}

func TestCategoryRepository_List(t *testing.T) {
	ctx := context.Background()
	tree := treeFixture(t, map[string]any{
		"laundry_shops/shop-1/categories": map[string]any{
			"Ironing":      map[string]any{"price": 5000, "description": "Per kg"},
			"Dry cleaning": map[string]any{"price": 15000},
		},
	})
	repo := NewCategoryRepository(tree, zap.NewNop())

	categories, err := repo.List(ctx, "shop-1")
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Dry cleaning", categories[0].CategoryName)
	assert.Equal(t, 15000.0, categories[0].Price)
	assert.Equal(t, "Ironing", categories[1].CategoryName)
}

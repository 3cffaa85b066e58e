package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"elaundry/internal/dto/response"
	"elaundry/internal/usecase"
	"elaundry/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockShopService is a func-field double for usecase.ShopService.
type mockShopService struct {
	listShopsFunc       func(ctx context.Context) ([]response.ShopResponse, error)
	deleteShopAdminFunc func(ctx context.Context, userID, shopID string) error
}

func (m *mockShopService) ListShops(ctx context.Context) ([]response.ShopResponse, error) {
	if m.listShopsFunc != nil {
		return m.listShopsFunc(ctx)
	}
	return nil, nil
}

func (m *mockShopService) DeleteShopAdmin(ctx context.Context, userID, shopID string) error {
	if m.deleteShopAdminFunc != nil {
		return m.deleteShopAdminFunc(ctx, userID, shopID)
	}
	return nil
}

func postDeleteUser(t *testing.T, handler *ShopHandler, body string) (*httptest.ResponseRecorder, utils.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/delete-user", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	handler.DeleteUser(rec, req)

	var envelope utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return rec, envelope
}

func TestShopHandler_DeleteUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotUserID, gotShopID string
		svc := &mockShopService{
			deleteShopAdminFunc: func(ctx context.Context, userID, shopID string) error {
				gotUserID, gotShopID = userID, shopID
				return nil
			},
		}
		handler := NewShopHandler(svc, zap.NewNop())

		rec, envelope := postDeleteUser(t, handler, `{"userId":"uid-1","shopId":"shop-1"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, envelope.Status)
		assert.Equal(t, "uid-1", gotUserID)
		assert.Equal(t, "shop-1", gotShopID)
	})

	t.Run("missing identifiers", func(t *testing.T) {
		svc := &mockShopService{
			deleteShopAdminFunc: func(ctx context.Context, userID, shopID string) error {
				return usecase.ErrMissingIdentifiers
			},
		}
		handler := NewShopHandler(svc, zap.NewNop())

		rec, envelope := postDeleteUser(t, handler, `{"userId":"uid-1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.False(t, envelope.Status)
		assert.Contains(t, envelope.Message, "missing userId or shopId")
	})

	t.Run("downstream failure keeps its message", func(t *testing.T) {
		svc := &mockShopService{
			deleteShopAdminFunc: func(ctx context.Context, userID, shopID string) error {
				return errors.New("delete identity account: provider unavailable")
			},
		}
		handler := NewShopHandler(svc, zap.NewNop())

		rec, envelope := postDeleteUser(t, handler, `{"userId":"uid-1","shopId":"shop-1"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, envelope.Message, "provider unavailable")
	})

	t.Run("invalid body", func(t *testing.T) {
		handler := NewShopHandler(&mockShopService{}, zap.NewNop())

		rec, _ := postDeleteUser(t, handler, `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestShopHandler_List(t *testing.T) {
	svc := &mockShopService{
		listShopsFunc: func(ctx context.Context) ([]response.ShopResponse, error) {
			return []response.ShopResponse{{ShopID: "shop-1"}, {ShopID: "shop-2"}}, nil
		},
	}
	handler := NewShopHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/shops", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Status)
}

package treedb

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"elaundry/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	query  string
	body   string
}

func newTestClient(t *testing.T, status int, response string, recorded *recordedRequest) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*recorded = recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			body:   string(body),
		}
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)

	return New(utils.TreeDBConfig{BaseURL: server.URL})
}

func TestClient_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("existing node", func(t *testing.T) {
		var recorded recordedRequest
		client := newTestClient(t, http.StatusOK, `{"name":"Budi","user_role":"admin"}`, &recorded)

		var out map[string]string
		found, err := client.Get(ctx, "users/uid-1", &out)
		require.NoError(t, err)

		assert.True(t, found)
		assert.Equal(t, http.MethodGet, recorded.method)
		assert.Equal(t, "/users/uid-1.json", recorded.path)
		assert.Equal(t, "admin", out["user_role"])
	})

	t.Run("absent node reads as null", func(t *testing.T) {
		var recorded recordedRequest
		client := newTestClient(t, http.StatusOK, "null", &recorded)

		var out map[string]string
		found, err := client.Get(ctx, "users/uid-missing", &out)
		require.NoError(t, err)

		assert.False(t, found)
		assert.Empty(t, out)
	})

	t.Run("server error", func(t *testing.T) {
		var recorded recordedRequest
		client := newTestClient(t, http.StatusUnauthorized, `{"error":"Permission denied"}`, &recorded)

		var out map[string]string
		_, err := client.Get(ctx, "users/uid-1", &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})
}

func TestClient_Writes(t *testing.T) {
	ctx := context.Background()

	t.Run("set replaces the node with PUT", func(t *testing.T) {
		var recorded recordedRequest
		client := newTestClient(t, http.StatusOK, `{}`, &recorded)

		err := client.Set(ctx, "laundry_shops/shop-1", map[string]string{"name": "Laundry Berkah"})
		require.NoError(t, err)

		assert.Equal(t, http.MethodPut, recorded.method)
		assert.Equal(t, "/laundry_shops/shop-1.json", recorded.path)

		var sent map[string]string
		require.NoError(t, json.Unmarshal([]byte(recorded.body), &sent))
		assert.Equal(t, "Laundry Berkah", sent["name"])
	})

	t.Run("update patches fields with PATCH", func(t *testing.T) {
		var recorded recordedRequest
		client := newTestClient(t, http.StatusOK, `{}`, &recorded)

		err := client.Update(ctx, "ordermaster/o1", map[string]any{"orderStatus": "Completed"})
		require.NoError(t, err)

		assert.Equal(t, http.MethodPatch, recorded.method)
		assert.Equal(t, "/ordermaster/o1.json", recorded.path)
		assert.Contains(t, recorded.body, "Completed")
	})

	t.Run("keys with spaces are escaped", func(t *testing.T) {
		var recorded recordedRequest
		client := newTestClient(t, http.StatusOK, `{}`, &recorded)

		err := client.Set(ctx, "laundry_shops/shop-1/categories/Dry cleaning", map[string]any{"price": 15000})
		require.NoError(t, err)

		assert.Equal(t, "/laundry_shops/shop-1/categories/Dry cleaning.json", recorded.path)
	})

	t.Run("remove deletes the node", func(t *testing.T) {
		var recorded recordedRequest
		client := newTestClient(t, http.StatusOK, "null", &recorded)

		err := client.Remove(ctx, "users/uid-1")
		require.NoError(t, err)

		assert.Equal(t, http.MethodDelete, recorded.method)
		assert.Equal(t, "/users/uid-1.json", recorded.path)
	})
}

func TestClient_AuthToken(t *testing.T) {
	var recorded recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded = recordedRequest{query: r.URL.RawQuery}
		w.Write([]byte("null"))
	}))
	t.Cleanup(server.Close)

	client := New(utils.TreeDBConfig{BaseURL: server.URL, AuthToken: "secret-token"})

	var out any
	_, err := client.Get(context.Background(), "users/uid-1", &out)
	require.NoError(t, err)
	assert.Equal(t, "auth=secret-token", recorded.query)
}

package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"elaundry/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFirebase(t *testing.T, handler http.HandlerFunc) *FirebaseClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewFirebaseClient(utils.IdentityConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
}

func authError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"message": message},
	})
}

func TestFirebaseClient_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns local id", func(t *testing.T) {
		client := newTestFirebase(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/accounts:signInWithPassword", r.URL.Path)
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			json.NewEncoder(w).Encode(map[string]any{"localId": "uid-1"})
		})

		uid, err := client.SignIn(ctx, "budi@laundry.test", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "uid-1", uid)
	})

	t.Run("credential errors collapse to one sentinel", func(t *testing.T) {
		for _, code := range []string{"EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS", "USER_DISABLED"} {
			client := newTestFirebase(t, func(w http.ResponseWriter, r *http.Request) {
				authError(w, http.StatusBadRequest, code)
			})

			_, err := client.SignIn(ctx, "budi@laundry.test", "wrong")
			assert.ErrorIs(t, err, ErrInvalidCredentials, "code %s", code)
		}
	})

	t.Run("unexpected error keeps its code", func(t *testing.T) {
		client := newTestFirebase(t, func(w http.ResponseWriter, r *http.Request) {
			authError(w, http.StatusBadRequest, "TOO_MANY_ATTEMPTS_TRY_LATER")
		})

		_, err := client.SignIn(ctx, "budi@laundry.test", "secret123")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TOO_MANY_ATTEMPTS_TRY_LATER")
	})
}

func TestFirebaseClient_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		client := newTestFirebase(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/accounts:signUp", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]any{"localId": "uid-new"})
		})

		uid, err := client.SignUp(ctx, "berkah@laundry.test", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "uid-new", uid)
	})

	t.Run("email exists", func(t *testing.T) {
		client := newTestFirebase(t, func(w http.ResponseWriter, r *http.Request) {
			authError(w, http.StatusBadRequest, "EMAIL_EXISTS")
		})

		_, err := client.SignUp(ctx, "berkah@laundry.test", "secret123")
		assert.ErrorIs(t, err, ErrEmailInUse)
	})
}

func TestFirebaseClient_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		client := newTestFirebase(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/accounts:delete", r.URL.Path)

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "uid-1", body["localId"])

			json.NewEncoder(w).Encode(map[string]any{})
		})

		require.NoError(t, client.DeleteAccount(ctx, "uid-1"))
	})

	t.Run("unknown uid", func(t *testing.T) {
		client := newTestFirebase(t, func(w http.ResponseWriter, r *http.Request) {
			authError(w, http.StatusBadRequest, "USER_NOT_FOUND")
		})

		err := client.DeleteAccount(ctx, "uid-ghost")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})
}

package usecase

import (
	"context"
	"testing"
	"time"

	"elaundry/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSessionStore is an in-memory stand-in for the Postgres session
// repository. It also satisfies repository.SessionRepository so service
// tests can drop it straight into a Repository struct.
type memSessionStore struct {
	sessions map[string]*entity.Session
	saveErr  error
	saves    int
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*entity.Session)}
}

func (s *memSessionStore) Save(ctx context.Context, session *entity.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	copied := *session
	s.sessions[session.Token] = &copied
	s.saves++
	return nil
}

func (s *memSessionStore) Find(ctx context.Context, token string) (*entity.Session, error) {
	session, ok := s.sessions[token]
	if !ok || time.Now().After(session.ExpiresAt) {
		return nil, nil
	}
	copied := *session
	return &copied, nil
}

func (s *memSessionStore) Clear(ctx context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func (s *memSessionStore) CleanExpired(ctx context.Context) error {
	for token, session := range s.sessions {
		if time.Now().After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
	return nil
}

func TestSessionContext_SyncRule(t *testing.T) {
	ctx := context.Background()

	t.Run("nothing persisted while identifiers incomplete", func(t *testing.T) {
		store := newMemSessionStore()
		sess := NewSessionContext(store, time.Hour)

		require.NoError(t, sess.SetRole(ctx, entity.RoleAdmin))
		require.NoError(t, sess.SetUsername(ctx, "Budi"))
		require.NoError(t, sess.SetUserID(ctx, "user-1"))

		assert.Zero(t, store.saves)
		assert.Empty(t, store.sessions)
	})

	t.Run("setting the second identifier mirrors the full record", func(t *testing.T) {
		store := newMemSessionStore()
		sess := NewSessionContext(store, time.Hour)

		require.NoError(t, sess.SetRole(ctx, entity.RoleAdmin))
		require.NoError(t, sess.SetUserID(ctx, "user-1"))
		require.NoError(t, sess.SetShopID(ctx, "shop-1"))

		require.Equal(t, 1, store.saves)
		saved := store.sessions[sess.Token()]
		require.NotNil(t, saved)
		assert.Equal(t, "user-1", saved.UserID)
		assert.Equal(t, "shop-1", saved.ShopID)
		assert.Equal(t, entity.RoleAdmin, saved.Role)
	})

	t.Run("later changes keep mirroring once complete", func(t *testing.T) {
		store := newMemSessionStore()
		sess := NewSessionContext(store, time.Hour)

		require.NoError(t, sess.SetUserID(ctx, "user-1"))
		require.NoError(t, sess.SetShopID(ctx, "shop-1"))
		require.NoError(t, sess.SetUsername(ctx, "Budi"))

		require.Equal(t, 2, store.saves)
		assert.Equal(t, "Budi", store.sessions[sess.Token()].Username)
	})
}

func TestSessionContext_Hydration(t *testing.T) {
	ctx := context.Background()
	store := newMemSessionStore()

	sess := NewSessionContext(store, time.Hour)
	require.NoError(t, sess.SetRole(ctx, entity.RoleAdmin))
	require.NoError(t, sess.SetUsername(ctx, "Budi"))
	require.NoError(t, sess.SetUserID(ctx, "user-1"))
	require.NoError(t, sess.SetShopID(ctx, "shop-1"))

	// A fresh load sees every field that was mirrored, without any
	// fallback read by the caller.
	loaded, err := LoadSessionContext(ctx, store, sess.Token())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "user-1", loaded.UserID())
	assert.Equal(t, "shop-1", loaded.ShopID())
	assert.Equal(t, entity.RoleAdmin, loaded.Role())
	assert.Equal(t, "Budi", loaded.Username())
}

func TestSessionContext_LoadUnknownToken(t *testing.T) {
	store := newMemSessionStore()

	loaded, err := LoadSessionContext(context.Background(), store, "no-such-token")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionContext_Logout(t *testing.T) {
	ctx := context.Background()
	store := newMemSessionStore()

	sess := NewSessionContext(store, time.Hour)
	require.NoError(t, sess.SetRole(ctx, entity.RoleAdmin))
	require.NoError(t, sess.SetUserID(ctx, "user-1"))
	require.NoError(t, sess.SetShopID(ctx, "shop-1"))

	require.NoError(t, sess.Logout(ctx))

	assert.Empty(t, sess.Role())

	loaded, err := LoadSessionContext(ctx, store, sess.Token())
	require.NoError(t, err)
	assert.Nil(t, loaded, "logged-out session must not survive in the store")
}

func TestSessionContext_ExpiredSessionNotLoaded(t *testing.T) {
	ctx := context.Background()
	store := newMemSessionStore()

	sess := NewSessionContext(store, -time.Minute)
	require.NoError(t, sess.SetUserID(ctx, "user-1"))
	require.NoError(t, sess.SetShopID(ctx, "shop-1"))

	loaded, err := LoadSessionContext(ctx, store, sess.Token())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

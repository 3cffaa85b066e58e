package usecase

import (
	"context"
	"time"

	"elaundry/internal/data/entity"
	"elaundry/pkg/utils"
)

// SessionStore is the persisted side of a session context. Implemented by
// repository.SessionRepository; tests use an in-memory double.
type SessionStore interface {
	Save(ctx context.Context, session *entity.Session) error
	Find(ctx context.Context, token string) (*entity.Session, error)
	Clear(ctx context.Context, token string) error
}

// SessionContext is the in-memory session state consulted by navigation and
// the route guard. It mirrors itself to the store: whenever both user id and
// shop id are non-empty after a setter runs, the full record is written out.
// Superadmin sessions never carry a shop id, so login calls Persist
// explicitly after populating the context.
type SessionContext struct {
	store SessionStore

	token     string
	userID    string
	shopID    string
	role      string
	username  string
	expiresAt time.Time
	createdAt time.Time
}

// NewSessionContext creates an empty context with a fresh token. Nothing is
// persisted until the synchronization rule fires or Persist is called.
func NewSessionContext(store SessionStore, ttl time.Duration) *SessionContext {
	now := time.Now()
	return &SessionContext{
		store:     store,
		token:     utils.GenerateSessionToken(),
		expiresAt: now.Add(ttl),
		createdAt: now,
	}
}

// LoadSessionContext hydrates a context from the store before any field can
// be read, so consumers never need a fallback read of their own. Returns
// (nil, nil) when the token has no persisted session.
func LoadSessionContext(ctx context.Context, store SessionStore, token string) (*SessionContext, error) {
	record, err := store.Find(ctx, token)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	return &SessionContext{
		store:     store,
		token:     record.Token,
		userID:    record.UserID,
		shopID:    record.ShopID,
		role:      record.Role,
		username:  record.Username,
		expiresAt: record.ExpiresAt,
		createdAt: record.CreatedAt,
	}, nil
}

func (s *SessionContext) Token() string    { return s.token }
func (s *SessionContext) UserID() string   { return s.userID }
func (s *SessionContext) ShopID() string   { return s.shopID }
func (s *SessionContext) Role() string     { return s.role }
func (s *SessionContext) Username() string { return s.username }

// Setters accept any string, including empty; no validation happens here.
// An unrecognized role simply matches no navigation branch.

func (s *SessionContext) SetUserID(ctx context.Context, userID string) error {
	s.userID = userID
	return s.syncIfComplete(ctx)
}

func (s *SessionContext) SetShopID(ctx context.Context, shopID string) error {
	s.shopID = shopID
	return s.syncIfComplete(ctx)
}

func (s *SessionContext) SetRole(ctx context.Context, role string) error {
	s.role = role
	return s.syncIfComplete(ctx)
}

func (s *SessionContext) SetUsername(ctx context.Context, username string) error {
	s.username = username
	return s.syncIfComplete(ctx)
}

// syncIfComplete applies the synchronization rule: once user id and shop id
// are both set, every change mirrors the whole record to the store.
func (s *SessionContext) syncIfComplete(ctx context.Context) error {
	if s.userID == "" || s.shopID == "" {
		return nil
	}
	return s.Persist(ctx)
}

// Persist writes the current record unconditionally.
func (s *SessionContext) Persist(ctx context.Context) error {
	return s.store.Save(ctx, s.record())
}

// Logout clears the role in memory and removes the persisted session
// entirely, so a stale user id or shop id cannot survive a logout.
func (s *SessionContext) Logout(ctx context.Context) error {
	s.role = ""
	return s.store.Clear(ctx, s.token)
}

func (s *SessionContext) record() *entity.Session {
	return &entity.Session{
		Token:     s.token,
		UserID:    s.userID,
		ShopID:    s.shopID,
		Role:      s.role,
		Username:  s.username,
		ExpiresAt: s.expiresAt,
		CreatedAt: s.createdAt,
	}
}

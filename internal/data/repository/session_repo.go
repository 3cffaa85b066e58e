package repository

import (
	"context"
	"fmt"

	"elaundry/internal/data/entity"
	"elaundry/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SessionRepository is the persisted session store. Save writes the whole
// record at once so a reader never observes a partially updated triple.
type SessionRepository interface {
	Save(ctx context.Context, session *entity.Session) error
	Find(ctx context.Context, token string) (*entity.Session, error)
	Clear(ctx context.Context, token string) error
	CleanExpired(ctx context.Context) error
}

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Save(ctx context.Context, session *entity.Session) error {
	query := `
		INSERT INTO sessions (token, user_id, laundry_shop_id, user_role,
		                      username, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (token) DO UPDATE SET
			user_id         = EXCLUDED.user_id,
			laundry_shop_id = EXCLUDED.laundry_shop_id,
			user_role       = EXCLUDED.user_role,
			username        = EXCLUDED.username,
			expires_at      = EXCLUDED.expires_at
	`

	_, err := r.db.Exec(ctx, query,
		session.Token,
		session.UserID,
		session.ShopID,
		session.Role,
		session.Username,
		session.ExpiresAt,
		session.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to save session",
			zap.Error(err),
			zap.String("user_id", session.UserID),
		)
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (r *sessionRepository) Find(ctx context.Context, token string) (*entity.Session, error) {
	query := `
		SELECT token, user_id, laundry_shop_id, user_role,
		       username, expires_at, created_at
		FROM sessions
		WHERE token = $1
		  AND expires_at > NOW()
	`

	var session entity.Session
	err := r.db.QueryRow(ctx, query, token).Scan(
		&session.Token,
		&session.UserID,
		&session.ShopID,
		&session.Role,
		&session.Username,
		&session.ExpiresAt,
		&session.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find session",
			zap.Error(err),
			zap.String("token", token),
		)
		return nil, fmt.Errorf("find session: %w", err)
	}

	return &session, nil
}

func (r *sessionRepository) Clear(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		r.log.Error("Failed to clear session",
			zap.Error(err),
			zap.String("token", token),
		)
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

func (r *sessionRepository) CleanExpired(ctx context.Context) error {
	query := `
		DELETE FROM sessions
		WHERE expires_at < NOW() - INTERVAL '7 days'
	`

	_, err := r.db.Exec(ctx, query)
	if err != nil {
		r.log.Error("Failed to clean expired sessions", zap.Error(err))
		return fmt.Errorf("clean sessions: %w", err)
	}

	return nil
}

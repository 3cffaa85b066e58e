package identity

import (
	"context"
	"fmt"
	"time"

	"elaundry/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// LocalProvider keeps credentials in the service's own Postgres for
// self-hosted deployments. Only email and bcrypt hash live here; the profile
// record stays in the tree database like with the hosted provider.
type LocalProvider struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLocalProvider(db database.PgxIface, log *zap.Logger) *LocalProvider {
	return &LocalProvider{
		db:  db,
		log: log.With(zap.String("identity", "local")),
	}
}

func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (string, error) {
	query := `SELECT uid, password_hash FROM identity_accounts WHERE email = $1`

	var uid, hash string
	err := p.db.QueryRow(ctx, query, email).Scan(&uid, &hash)
	if err == pgx.ErrNoRows {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		p.log.Error("Failed to look up identity account", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("find identity account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return uid, nil
}

func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (string, error) {
	var existing string
	err := p.db.QueryRow(ctx, `SELECT uid FROM identity_accounts WHERE email = $1`, email).Scan(&existing)
	if err == nil {
		return "", ErrEmailInUse
	}
	if err != pgx.ErrNoRows {
		p.log.Error("Failed to check existing email", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("check identity email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	uid := uuid.New().String()
	query := `
		INSERT INTO identity_accounts (uid, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := p.db.Exec(ctx, query, uid, email, string(hash), time.Now()); err != nil {
		p.log.Error("Failed to create identity account", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("create identity account: %w", err)
	}

	return uid, nil
}

func (p *LocalProvider) DeleteAccount(ctx context.Context, uid string) error {
	result, err := p.db.Exec(ctx, `DELETE FROM identity_accounts WHERE uid = $1`, uid)
	if err != nil {
		p.log.Error("Failed to delete identity account", zap.Error(err), zap.String("uid", uid))
		return fmt.Errorf("delete identity account %s: %w", uid, err)
	}

	if result.RowsAffected() == 0 {
		return ErrAccountNotFound
	}

	return nil
}

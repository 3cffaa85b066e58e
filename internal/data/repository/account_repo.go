package repository

import (
	"context"
	"fmt"

	"elaundry/internal/clients/treedb"
	"elaundry/internal/data/entity"

	"go.uber.org/zap"
)

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	Find(ctx context.Context, userID string) (*entity.Account, error)
	Remove(ctx context.Context, userID string) error
}

type accountRepository struct {
	tree *treedb.Client
	log  *zap.Logger
}

func NewAccountRepository(tree *treedb.Client, log *zap.Logger) AccountRepository {
	return &accountRepository{
		tree: tree,
		log:  log.With(zap.String("repository", "account")),
	}
}

func accountPath(userID string) string {
	return "users/" + userID
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if err := r.tree.Set(ctx, accountPath(account.UserID), account); err != nil {
		r.log.Error("Failed to create account record",
			zap.Error(err),
			zap.String("user_id", account.UserID),
		)
		return fmt.Errorf("create account %s: %w", account.UserID, err)
	}

	return nil
}

// Find returns nil when no record exists for the id (an authenticated
// identity without an account record is a real state the login flow handles).
func (r *accountRepository) Find(ctx context.Context, userID string) (*entity.Account, error) {
	var account entity.Account
	found, err := r.tree.Get(ctx, accountPath(userID), &account)
	if err != nil {
		r.log.Error("Failed to find account record",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("find account %s: %w", userID, err)
	}
	if !found {
		return nil, nil
	}

	return &account, nil
}

func (r *accountRepository) Remove(ctx context.Context, userID string) error {
	if err := r.tree.Remove(ctx, accountPath(userID)); err != nil {
		r.log.Error("Failed to remove account record",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return fmt.Errorf("remove account %s: %w", userID, err)
	}

	return nil
}

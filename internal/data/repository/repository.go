package repository

import (
	"elaundry/internal/clients/treedb"
	"elaundry/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Session  SessionRepository
	Account  AccountRepository
	Shop     ShopRepository
	Category CategoryRepository
	Order    OrderRepository
}

// NewRepository wires every repository. Sessions live in Postgres; account,
// shop and order records live in the external tree database.
func NewRepository(db database.PgxIface, tree *treedb.Client, log *zap.Logger) *Repository {
	return &Repository{
		Session:  NewSessionRepository(db, log),
		Account:  NewAccountRepository(tree, log),
		Shop:     NewShopRepository(tree, log),
		Category: NewCategoryRepository(tree, log),
		Order:    NewOrderRepository(tree, log),
	}
}

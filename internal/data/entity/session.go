package entity

import (
	"time"
)

// Session is the persisted session record: the {userId, laundryShopId,
// userRole} triple plus display name, keyed by an opaque token. It is the
// durable side of the in-memory session context and survives restarts.
type Session struct {
	Token     string    `db:"token"`
	UserID    string    `db:"user_id"`
	ShopID    string    `db:"laundry_shop_id"`
	Role      string    `db:"user_role"`
	Username  string    `db:"username"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

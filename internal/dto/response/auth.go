package response

import "time"

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    string    `json:"user_id"`
	ShopID    string    `json:"laundry_shop_id,omitempty"`
	Role      string    `json:"user_role"`
	Username  string    `json:"username,omitempty"`
	Redirect  string    `json:"redirect"`
	// Warning is set when an admin account has no shop linkage; login still
	// succeeds but the dashboard will be unusable until fixed.
	Warning string `json:"warning,omitempty"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
	ShopID string `json:"laundry_shop_id"`
}

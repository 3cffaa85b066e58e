package response

type SessionResponse struct {
	UserID   string `json:"user_id"`
	ShopID   string `json:"laundry_shop_id,omitempty"`
	Role     string `json:"user_role,omitempty"`
	Username string `json:"username,omitempty"`
}

type NavEntry struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

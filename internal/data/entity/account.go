package entity

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Account is the user record stored in the tree database under
// users/{userId}. The id itself is issued by the identity provider and is
// an opaque string, not a UUID.
type Account struct {
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Role          string `json:"role"`
	LaundryShopID string `json:"laundry_shop_id,omitempty"`
	CreatedAt     string `json:"created_at"`
}

package entity

const (
	ShopStatusActive = "active"
)

// Shop is a laundry tenant stored under laundry_shops/{shopId}. Timestamps
// are RFC3339 strings to keep tree database values sortable.
type Shop struct {
	ShopID    string  `json:"shop_id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone,omitempty"`
	AdminID   string  `json:"admin_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

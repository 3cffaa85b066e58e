package response

import "elaundry/internal/data/entity"

type ShopResponse struct {
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

func ShopToResponse(shop *entity.Shop) ShopResponse {
	return ShopResponse{
		ShopID:    shop.ShopID,
		Name:      shop.Name,
		Address:   shop.Address,
		Phone:     shop.Phone,
		AdminID:   shop.AdminID,
		Latitude:  shop.Latitude,
		Longitude: shop.Longitude,
		Status:    shop.Status,
		CreatedAt: shop.CreatedAt,
		UpdatedAt: shop.UpdatedAt,
	}
}

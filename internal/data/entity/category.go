package entity

// Category is a service offered by one shop, stored under
// laundry_shops/{shopId}/categories/{categoryName}. The category name doubles
// as the tree key.
type Category struct {
	CategoryName string  `json:"category_name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
}

// PredefinedCategories are the service names offered to admins when adding
// a category from the dashboard.
var PredefinedCategories = []string{
	"Dry cleaning",
	"Wash and iron",
	"Ironing",
	"Premium wash",
}

package request

type AddCategoryRequest struct {
	CategoryName string  `json:"category_name" validate:"required,min=1,max=100"`
	Price        float64 `json:"price" validate:"omitempty,gte=0"`
	Description  string  `json:"description" validate:"omitempty,max=500"`
}

type UpdateCategoryRequest struct {
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description" validate:"omitempty,max=500"`
}

package response

import "elaundry/internal/data/entity"

type CategoryResponse struct {
	CategoryName string  `json:"category_name"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Presets    []string           `json:"presets"`
}

func CategoryToResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		CategoryName: category.CategoryName,
		Price:        category.Price,
		Description:  category.Description,
	}
}

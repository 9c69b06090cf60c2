package dto

type CreateProductRequest struct {
	Name      string  `json:"name" validate:"required"`
	Category  string  `json:"category"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name      string  `json:"name" validate:"required"`
	Category  string  `json:"category"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

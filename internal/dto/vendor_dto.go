package dto

type CreateVendorRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

type UpdateVendorRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

package api

// UpdateMeRequest is a partial profile update. Nil means "leave unchanged";
// an empty password is also a no-op, it never erases the stored hash.
// swagger:model api.UpdateMeRequest
type UpdateMeRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2" example:"Alice Souza"`
	Email    *string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
	Password *string `json:"password" validate:"omitempty,min=6" example:"NewSecret123!"`
	City     *string `json:"city" validate:"omitempty,min=1" example:"Curitiba"`
}

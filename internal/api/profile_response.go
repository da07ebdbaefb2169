package api

// swagger:model api.ProfileResponse
type ProfileResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message,omitempty" example:"Perfil atualizado com sucesso"`
	Data    UserResponse `json:"data"`
}

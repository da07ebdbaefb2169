package api

// AuthResponse is returned by register and login with a fresh access token.
// swagger:model api.AuthResponse
type AuthResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message" example:"Login realizado com sucesso"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

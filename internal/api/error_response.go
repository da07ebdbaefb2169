package api

// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Error   bool   `json:"error" example:"true"`
	Message string `json:"message" example:"Não autorizado"`
}

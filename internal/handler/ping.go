package handler

import (
	"net/http"

	"inevent-weather/internal/api"
	"inevent-weather/internal/database"

	"github.com/labstack/echo/v4"
)

// PingResponse é o modelo de resposta do health check
// swagger:model PingResponse
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// PingHandler verifica a saúde do serviço e da conexão com o banco
// @Summary     Health Check
// @Description Retorna pong e verifica a conexão com o banco de dados
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: true, Message: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}

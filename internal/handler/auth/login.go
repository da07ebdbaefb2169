package auth

import (
	"net/http"
	"strings"
	"time"

	"inevent-weather/internal/api"
	"inevent-weather/internal/database"

	"github.com/labstack/echo/v4"
)

// LoginHandler autentica por e-mail/senha e retorna um JWT
// @Summary     Login
// @Description Valida e-mail e senha e retorna o token de acesso com a validade configurada
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "Credenciais"
// @Success     200 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, tokenTTL time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: true, Message: "Dados inválidos"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: true, Message: "Email e senha são obrigatórios"})
		}

		// mesma resposta para e-mail desconhecido e senha errada
		user, err := authenticateUser(c.Request().Context(), db, strings.ToLower(req.Email), req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: true, Message: "E-mail ou senha inválidos"})
		}

		token, err := issueAccessToken(*user, tokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: true, Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.AuthResponse{
			Success: true,
			Message: "Login realizado com sucesso",
			User:    api.NewUserResponse(user),
			Token:   token,
		})
	}
}

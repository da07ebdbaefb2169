package auth

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"inevent-weather/internal/api"
	"inevent-weather/internal/database"
	"inevent-weather/internal/model"
	"inevent-weather/internal/service"
	"inevent-weather/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	createUser       = store.CreateUser
)

// RegisterHandler cria uma conta e já emite o token de acesso
// @Summary     Cadastrar usuário
// @Description Cria uma nova conta (e-mail normalizado para minúsculas) e retorna o token de acesso
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "Dados de cadastro"
// @Success     201 {object} api.AuthResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/register [post]
func RegisterHandler(db database.DB, tokenTTL time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: true, Message: "Dados inválidos"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: true, Message: api.ValidationMessage(err)})
		}

		req.Email = strings.ToLower(req.Email)
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: true, Message: "Formato de e-mail inválido"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: true, Message: "Erro ao processar a senha"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Name:         req.Name,
			City:         req.City,
			Email:        req.Email,
			PasswordHash: hash,
		})
		if err != nil {
			if errors.Is(err, store.ErrDuplicateEmail) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Error: true, Message: "E-mail já cadastrado"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: true, Message: err.Error()})
		}

		token, err := issueAccessToken(*user, tokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: true, Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.AuthResponse{
			Success: true,
			Message: "Usuário cadastrado com sucesso",
			User:    api.NewUserResponse(user),
			Token:   token,
		})
	}
}

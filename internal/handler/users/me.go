package users

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"inevent-weather/internal/api"
	"inevent-weather/internal/database"
	"inevent-weather/internal/middleware"
	"inevent-weather/internal/service"
	"inevent-weather/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	getUserByID  = store.GetUserByID
	updateUser   = store.UpdateUser
	deleteUser   = store.DeleteUser
)

// GetMeHandler retorna o perfil do usuário autenticado
// @Summary     Meu perfil
// @Description Retorna os dados do usuário identificado pelo token
// @Tags        users
// @Produce     json
// @Success     200 {object} api.ProfileResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [get]
func GetMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claim := middleware.CurrentUser(c)
		if claim == nil || claim.ID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: true, Message: "Não autorizado"})
		}

		user, err := getUserByID(c.Request().Context(), db, claim.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: true, Message: "Usuário não encontrado"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: true, Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.ProfileResponse{
			Success: true,
			Data:    api.NewUserResponse(user),
		})
	}
}

// UpdateMeHandler aplica uma atualização parcial do perfil
// @Summary     Atualizar perfil
// @Description Atualiza nome, cidade, e-mail e/ou senha; campos ausentes não são alterados
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body api.UpdateMeRequest true "Campos a atualizar"
// @Success     200 {object} api.ProfileResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [put]
func UpdateMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claim := middleware.CurrentUser(c)
		if claim == nil || claim.ID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: true, Message: "Não autorizado"})
		}

		var req api.UpdateMeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: true, Message: "Dados inválidos"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: true, Message: api.ValidationMessage(err)})
		}

		if req.Email != nil {
			lowered := strings.ToLower(*req.Email)
			if _, err := mail.ParseAddress(lowered); err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: true, Message: "Formato de e-mail inválido"})
			}
			req.Email = &lowered
		}

		params := store.UpdateUserParams{
			Name:  req.Name,
			City:  req.City,
			Email: req.Email,
		}
		// senha vazia é ignorada, nunca apaga o hash
		if req.Password != nil && *req.Password != "" {
			hash, err := hashPassword(*req.Password)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: true, Message: "Erro ao processar a senha"})
			}
			params.PasswordHash = &hash
		}

		user, err := updateUser(c.Request().Context(), db, claim.ID, params)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: true, Message: "Usuário não encontrado"})
			case errors.Is(err, store.ErrDuplicateEmail):
				return c.JSON(http.StatusConflict, api.ErrorResponse{Error: true, Message: "E-mail já cadastrado"})
			default:
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: true, Message: err.Error()})
			}
		}

		return c.JSON(http.StatusOK, api.ProfileResponse{
			Success: true,
			Message: "Perfil atualizado com sucesso",
			Data:    api.NewUserResponse(user),
		})
	}
}

// DeleteMeHandler remove definitivamente a conta do usuário autenticado
// @Summary     Excluir conta
// @Description Exclui a conta do usuário identificado pelo token (hard delete)
// @Tags        users
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /users/me [delete]
func DeleteMeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claim := middleware.CurrentUser(c)
		if claim == nil || claim.ID == 0 {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: true, Message: "Não autorizado"})
		}

		deleted, err := deleteUser(c.Request().Context(), db, claim.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: true, Message: err.Error()})
		}
		if !deleted {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Error: true, Message: "Usuário não encontrado"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{
			Success: true,
			Message: "Conta excluída com sucesso",
		})
	}
}

package middleware

import (
	"net/http"

	"inevent-weather/internal/service"

	"github.com/labstack/echo/v4"
)

// ContextUserKey is where RequireAuth stashes the verified user claim.
const ContextUserKey = "user"

func extractUser(c echo.Context) (*service.UserClaim, error) {
	token := service.ExtractBearerToken(c.Request().Header.Get("Authorization"))
	if token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Não autorizado")
	}
	user, err := service.UserFromToken(token)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Não autorizado")
	}
	return user, nil
}

// RequireAuth rejects requests without a valid bearer token and exposes the
// token's user claim to downstream handlers.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := extractUser(c)
		if err != nil {
			return err
		}
		c.Set(ContextUserKey, user)
		return next(c)
	}
}

// CurrentUser reads the claim RequireAuth stored, nil when absent.
func CurrentUser(c echo.Context) *service.UserClaim {
	user, _ := c.Get(ContextUserKey).(*service.UserClaim)
	return user
}

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inevent-weather/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestSetupRoutes(t *testing.T) {
	e := echo.New()
	Setup(e, &database.FakeDB{}, nil, time.Hour)

	registered := map[string]bool{}
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /api/ping",
		"POST /api/auth/register",
		"POST /api/auth/login",
		"GET /api/users/me",
		"PUT /api/users/me",
		"DELETE /api/users/me",
		"GET /api/weather",
		"GET /api/forecast",
		"GET /api/air-quality",
	} {
		require.True(t, registered[want], "route %s not registered", want)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "router-secret")

	e := echo.New()
	Setup(e, &database.FakeDB{}, nil, time.Hour)

	for _, target := range []string{
		"/api/users/me",
		"/api/weather?city=Recife",
		"/api/forecast?city=Recife",
		"/api/air-quality?lat=1&lon=2",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

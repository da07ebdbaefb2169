package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"inevent-weather/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	newContext := func() (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		rec := httptest.NewRecorder()
		return echo.New().NewContext(req, rec), rec
	}

	t.Run("healthy", func(t *testing.T) {
		db := &database.FakeDB{
			PingFn: func(ctx context.Context) error { return nil },
		}
		c, rec := newContext()
		require.NoError(t, PingHandler(db)(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		db := &database.FakeDB{
			PingFn: func(ctx context.Context) error { return fmt.Errorf("dial error") },
		}
		c, rec := newContext()
		require.NoError(t, PingHandler(db)(c))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.JSONEq(t, `{"error":true,"message":"database unhealthy"}`, rec.Body.String())
	})
}

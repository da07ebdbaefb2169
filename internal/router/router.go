package router

import (
	"time"

	"github.com/labstack/echo/v4"

	"inevent-weather/internal/database"
	"inevent-weather/internal/handler"
	"inevent-weather/internal/handler/auth"
	"inevent-weather/internal/handler/users"
	"inevent-weather/internal/middleware"
)

// Setup registra todas as rotas sob /api.
func Setup(e *echo.Echo, db database.DB, weatherSvc handler.WeatherService, tokenTTL time.Duration) {
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db))

	api.POST("/auth/register", auth.RegisterHandler(db, tokenTTL))
	api.POST("/auth/login", auth.LoginHandler(db, tokenTTL))

	apiMe := api.Group("/users/me", middleware.RequireAuth)
	apiMe.GET("", users.GetMeHandler(db))
	apiMe.PUT("", users.UpdateMeHandler(db))
	apiMe.DELETE("", users.DeleteMeHandler(db))

	api.GET("/weather", handler.CurrentWeatherHandler(weatherSvc), middleware.RequireAuth)
	api.GET("/forecast", handler.ForecastHandler(weatherSvc), middleware.RequireAuth)
	api.GET("/air-quality", handler.AirQualityHandler(weatherSvc), middleware.RequireAuth)
}

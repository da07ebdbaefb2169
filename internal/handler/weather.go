package handler

import (
	"context"
	"net/http"
	"strconv"

	"inevent-weather/internal/api"
	"inevent-weather/internal/weather"

	"github.com/labstack/echo/v4"
)

// WeatherService is the slice of weather.Client the handlers need; tests
// substitute a fake.
type WeatherService interface {
	CurrentWeather(ctx context.Context, city string) (*weather.Snapshot, error)
	Forecast(ctx context.Context, city string) (*weather.Forecast, error)
	AirQuality(ctx context.Context, lat, lon float64) (*weather.AirQuality, error)
}

// CurrentWeatherHandler retorna as condições atuais de uma cidade
// @Summary     Clima atual
// @Description Consulta o clima atual de uma cidade, com unidades métricas e descrições em português
// @Tags        weather
// @Produce     json
// @Param       city query string true "Nome da cidade"
// @Success     200 {object} weather.Snapshot
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /weather [get]
func CurrentWeatherHandler(svc WeatherService) echo.HandlerFunc {
	return func(c echo.Context) error {
		city := c.QueryParam("city")
		if city == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: true, Message: "Parâmetro city é obrigatório"})
		}

		snapshot, err := svc.CurrentWeather(c.Request().Context(), city)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.JSON(http.StatusOK, snapshot)
	}
}

// ForecastHandler retorna a previsão horária e diária de uma cidade
// @Summary     Previsão do tempo
// @Description Previsão das próximas 24h (blocos de 3h) e dos próximos 5 dias
// @Tags        weather
// @Produce     json
// @Param       city query string true "Nome da cidade"
// @Success     200 {object} weather.Forecast
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /forecast [get]
func ForecastHandler(svc WeatherService) echo.HandlerFunc {
	return func(c echo.Context) error {
		city := c.QueryParam("city")
		if city == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: true, Message: "Parâmetro city é obrigatório"})
		}

		forecast, err := svc.Forecast(c.Request().Context(), city)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.JSON(http.StatusOK, forecast)
	}
}

// AirQualityHandler retorna a qualidade do ar de uma coordenada
// @Summary     Qualidade do ar
// @Description Índice AQI (1-5) com rótulo em português e concentrações de poluentes
// @Tags        weather
// @Produce     json
// @Param       lat query number true "Latitude"
// @Param       lon query number true "Longitude"
// @Success     200 {object} weather.AirQuality
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /air-quality [get]
func AirQualityHandler(svc WeatherService) echo.HandlerFunc {
	return func(c echo.Context) error {
		latStr := c.QueryParam("lat")
		lonStr := c.QueryParam("lon")
		if latStr == "" || lonStr == "" {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: true, Message: "Parâmetros lat e lon são obrigatórios"})
		}

		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: true, Message: "Parâmetros lat e lon são obrigatórios"})
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: true, Message: "Parâmetros lat e lon são obrigatórios"})
		}

		sample, err := svc.AirQuality(c.Request().Context(), lat, lon)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: true, Message: err.Error()})
		}
		return c.JSON(http.StatusOK, sample)
	}
}

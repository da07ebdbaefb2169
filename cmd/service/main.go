// @title        InEvent Weather API
// @version      1.0
// @description  API de clima, previsão e qualidade do ar com contas de usuário
// @host         localhost:8000
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"os"

	"inevent-weather/internal/config"
	"inevent-weather/internal/database"
	"inevent-weather/internal/router"
	"inevent-weather/internal/weather"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	_ "inevent-weather/docs" // swag generated docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig      = config.Load
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc        = os.Exit
)

func run(log *logrus.Logger) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("falha ao carregar configuração: %w", err)
	}

	if os.Getenv("JWT_SECRET") == "" {
		return fmt.Errorf("variável de ambiente JWT_SECRET não configurada")
	}
	if cfg.OpenWeather.APIKey == "" {
		return fmt.Errorf("variável de ambiente OPENWEATHER_API_KEY não configurada")
	}

	if err := runMigrationsFn(cfg.DatabaseURL()); err != nil {
		return fmt.Errorf("falha ao executar migrations: %w", err)
	}

	db, err := newPgxPool(context.Background(), cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("falha na conexão com o banco: %w", err)
	}
	defer db.Close()

	weatherClient := weather.NewClient(cfg.OpenWeather.BaseURL, cfg.OpenWeather.APIKey, log)

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	router.Setup(e, db, weatherClient, cfg.TokenTTL())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	log.WithField("addr", cfg.Server.Addr).Info("starting inevent-weather service")
	return startServer(e, cfg.Server.Addr)
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := run(log); err != nil {
		log.Error(err)
		exitFunc(1)
	}
}

package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inevent-weather/internal/service"
	"inevent-weather/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// nopValidator accepts anything so tests can reach the checks that run after
// struct validation.
type nopValidator struct{}

func (nopValidator) Validate(interface{}) error { return nil }

func newJSONContext(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	return newJSONContextWith(t, target, body, &testValidator{validate: validator.New()})
}

func newJSONContextWith(t *testing.T, target, body string, v echo.Validator) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = v
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	hashPassword = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	createUser = store.CreateUser
}

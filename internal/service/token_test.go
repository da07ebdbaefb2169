package service

import (
	"testing"
	"time"

	"inevent-weather/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testUser = model.User{ID: 7, Email: "alice@example.com", Name: "Alice", City: "São Paulo"}

func TestIssueAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)

	t.Setenv("JWT_SECRET", "")
	_, err := IssueAccessToken(testUser, time.Minute)
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	tok, err := IssueAccessToken(testUser, time.Minute)
	require.NoError(t, err)

	claims := &CustomClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte("s"), nil })
	require.NoError(t, err)
	require.Equal(t, 7, claims.User.ID)
	require.Equal(t, "alice@example.com", claims.User.Email)
	require.Equal(t, "Alice", claims.User.Name)
	require.Equal(t, "São Paulo", claims.User.City)
	require.Equal(t, claims.IssuedAt.Add(time.Minute), claims.ExpiresAt.Time)
}

func TestVerifyAccessToken(t *testing.T) {
	t.Cleanup(restoreGlobals)

	t.Setenv("JWT_SECRET", "")
	_, err := VerifyAccessToken("abc")
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "s")
	_, err = VerifyAccessToken("not-a-token")
	require.Error(t, err)

	// alg=none is rejected
	tokNone, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"foo": "bar"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = VerifyAccessToken(tokNone)
	require.Error(t, err)

	// wrong secret
	tok, err := IssueAccessToken(testUser, time.Minute)
	require.NoError(t, err)
	t.Setenv("JWT_SECRET", "other")
	_, err = VerifyAccessToken(tok)
	require.Error(t, err)

	// expired, no leeway
	t.Setenv("JWT_SECRET", "s")
	expired, err := IssueAccessToken(testUser, -time.Minute)
	require.NoError(t, err)
	_, err = VerifyAccessToken(expired)
	require.Error(t, err)

	parseWithClaims = func(s string, c jwt.Claims, k jwt.Keyfunc, opts ...jwt.ParserOption) (*jwt.Token, error) {
		return &jwt.Token{Claims: &CustomClaims{}, Valid: false}, nil
	}
	_, err = VerifyAccessToken("whatever")
	require.Error(t, err)

	parseWithClaims = jwt.ParseWithClaims
	claims, err := VerifyAccessToken(tok)
	require.NoError(t, err)
	require.Equal(t, 7, claims.User.ID)
}

func TestExtractBearerToken(t *testing.T) {
	require.Equal(t, "abc123", ExtractBearerToken("Bearer abc123"))
	require.Equal(t, "abc123", ExtractBearerToken("bearer abc123"))
	require.Equal(t, "abc123", ExtractBearerToken("BEARER abc123"))
	require.Equal(t, "", ExtractBearerToken(""))
	require.Equal(t, "", ExtractBearerToken("abc123"))
	require.Equal(t, "", ExtractBearerToken("Basic abc123"))
}

func TestUserFromToken(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("JWT_SECRET", "s")

	tok, err := IssueAccessToken(testUser, time.Minute)
	require.NoError(t, err)

	user, err := UserFromToken(tok)
	require.NoError(t, err)
	require.Equal(t, 7, user.ID)
	require.Equal(t, "São Paulo", user.City)

	_, err = UserFromToken("garbage")
	require.Error(t, err)
}

package service

import (
	"fmt"
	"os"
	"strings"
	"time"

	"inevent-weather/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaim is the identity payload embedded in every access token.
type UserClaim struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	City  string `json:"city"`
}

// CustomClaims is the full JWT payload: registered iat/exp plus the user claim.
type CustomClaims struct {
	User UserClaim `json:"user"`
	jwt.RegisteredClaims
}

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

func jwtSecret() (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}
	return secret, nil
}

// IssueAccessToken signs an HS256 token carrying the user claim, valid for ttl.
func IssueAccessToken(user model.User, ttl time.Duration) (string, error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", err
	}

	now := timeNow()
	claims := CustomClaims{
		User: UserClaim{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			City:  user.City,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken parses and validates a token. It fails on malformed input,
// a non-HMAC alg header, a bad signature or an expired timestamp, with no
// clock-skew leeway.
func VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	secret, err := jwtSecret()
	if err != nil {
		return nil, err
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}

// ExtractBearerToken pulls the token out of an Authorization header value.
// The Bearer scheme matches case-insensitively; anything else yields "".
func ExtractBearerToken(headerValue string) string {
	parts := strings.SplitN(headerValue, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// UserFromToken is VerifyAccessToken plus user claim extraction.
func UserFromToken(tokenString string) (*UserClaim, error) {
	claims, err := VerifyAccessToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &claims.User, nil
}

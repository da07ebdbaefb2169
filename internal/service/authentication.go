package service

import (
	"context"
	"errors"

	"inevent-weather/internal/database"
	"inevent-weather/internal/model"
	"inevent-weather/internal/store"
)

var getUserByEmail = store.GetUserByEmail

// ErrInvalidCredentials covers both an unknown email and a wrong password.
// The two cases are deliberately indistinguishable to avoid account
// enumeration.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticateUser looks the user up by email and verifies the password
// against the stored bcrypt hash.
func AuthenticateUser(ctx context.Context, db database.DB, email, password string) (*model.User, error) {
	user, err := getUserByEmail(ctx, db, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

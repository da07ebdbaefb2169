package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"inevent-weather/internal/database"
	"inevent-weather/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound indicates the requested user does not exist.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

const userColumns = `id, name, city, email, password, created_at, updated_at`

// UpdateUserParams carries a partial profile update. Nil fields are left
// unchanged; a nil or empty PasswordHash never erases the stored hash.
type UpdateUserParams struct {
	Name         *string
	City         *string
	Email        *string
	PasswordHash *string
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.City,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE id = $1`,
		userID,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

// GetUserByEmail returns the full record, password hash included. Callers
// outside the login path must not expose the hash.
func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+`
		 FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

// CreateUser inserts a new user. The email is pre-checked for the friendly
// error, but the unique constraint on users.email is the authoritative guard
// against concurrent duplicate registration.
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	if _, err := GetUserByEmail(ctx, db, u.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	row := db.QueryRow(ctx,
		`INSERT INTO users (name, city, email, password)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		u.Name,
		u.City,
		u.Email,
		u.PasswordHash,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// UpdateUser applies a partial update and returns the fresh record. When the
// email changes, uniqueness is re-checked against every other user.
func UpdateUser(ctx context.Context, db database.DB, userID int, p UpdateUserParams) (*model.User, error) {
	existing, err := GetUserByID(ctx, db, userID)
	if err != nil {
		return nil, err
	}

	if p.Email != nil && *p.Email != existing.Email {
		var otherID int
		err := db.QueryRow(ctx,
			`SELECT id FROM users WHERE email = $1 AND id <> $2`,
			*p.Email, userID,
		).Scan(&otherID)
		if err == nil {
			return nil, ErrDuplicateEmail
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("UpdateUser: %w", err)
		}
	}

	fields := []string{}
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		fields = append(fields, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.City != nil {
		add("city", *p.City)
	}
	if p.Email != nil {
		add("email", *p.Email)
	}
	if p.PasswordHash != nil && *p.PasswordHash != "" {
		add("password", *p.PasswordHash)
	}

	if len(fields) == 0 {
		return existing, nil
	}
	fields = append(fields, "updated_at = now()")

	args = append(args, userID)
	sql := fmt.Sprintf(
		`UPDATE users SET %s WHERE id = $%d RETURNING `+userColumns,
		strings.Join(fields, ", "), len(args),
	)
	u, err := scanUser(db.QueryRow(ctx, sql, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("UpdateUser: %w", err)
	}
	return u, nil
}

// DeleteUser removes the user and reports whether a row existed.
func DeleteUser(ctx context.Context, db database.DB, userID int) (bool, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		userID,
	)
	if err != nil {
		return false, fmt.Errorf("DeleteUser: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

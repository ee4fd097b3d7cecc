package database

import (
	"context"
	"database/sql"

	"arc-portal/app/models"
)

// GetUserByEmail fetches an active auth user by email.
func GetUserByEmail(ctx context.Context, db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, username, is_active, created_at, updated_at
			  FROM users WHERE LOWER(TRIM(email)) = LOWER(TRIM($1)) AND is_active = true`

	err := db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Username,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID fetches an active auth user by id.
func GetUserByID(ctx context.Context, db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, username, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRowContext(ctx, query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.Username,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts an auth user with an already-hashed password.
func CreateUser(ctx context.Context, db *sql.DB, user *models.User) error {
	query := `INSERT INTO users (email, password, username)
			  VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
	return db.QueryRowContext(ctx, query, user.Email, user.Password, user.Username).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

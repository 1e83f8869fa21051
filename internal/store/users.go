package store

import (
	"context"

	"github.com/google/uuid"

	"steward/pkg/models"
)

// CreateUserParams holds the required fields for a new user
type CreateUserParams struct {
	Name    string
	Balance float64
}

// UpdateUserParams holds the optional fields for a partial user update
type UpdateUserParams struct {
	Name    *string
	Balance *float64
}

// GetUser fetches a single user by id
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, balance
		FROM users
		WHERE id = $1
	`, id).Scan(&user.ID, &user.Name, &user.Balance)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// ListUsers returns all users
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, balance FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Balance); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// CreateUser inserts a new user and returns it
func (s *Store) CreateUser(ctx context.Context, params CreateUserParams) (*models.User, error) {
	user := models.User{
		ID:      uuid.New().String(),
		Name:    params.Name,
		Balance: params.Balance,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, balance)
		VALUES ($1, $2, $3)
	`, user.ID, user.Name, user.Balance)
	if err != nil {
		s.logger.WithError(err).Error("Failed to create user")
		return nil, translateError(err)
	}
	return &user, nil
}

// UpdateUser applies a partial update and returns the updated user
func (s *Store) UpdateUser(ctx context.Context, id string, params UpdateUserParams) (*models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, `
		UPDATE users
		SET name = COALESCE($1, name), balance = COALESCE($2, balance)
		WHERE id = $3
		RETURNING id, name, balance
	`, params.Name, params.Balance, id).Scan(&user.ID, &user.Name, &user.Balance)
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// DeleteUser removes a user by id
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

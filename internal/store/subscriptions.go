package store

import (
	"context"

	"steward/pkg/models"
)

// ListSubscribers returns the users subscribed to the given author
func (s *Store) ListSubscribers(ctx context.Context, authorID string) ([]models.User, error) {
	return s.listSubscriptionUsers(ctx, `
		SELECT u.id, u.name, u.balance
		FROM users u
		JOIN subscriptions s ON s.subscriber_id = u.id
		WHERE s.author_id = $1
	`, authorID)
}

// ListSubscribedTo returns the authors the given user is subscribed to
func (s *Store) ListSubscribedTo(ctx context.Context, subscriberID string) ([]models.User, error) {
	return s.listSubscriptionUsers(ctx, `
		SELECT u.id, u.name, u.balance
		FROM users u
		JOIN subscriptions s ON s.author_id = u.id
		WHERE s.subscriber_id = $1
	`, subscriberID)
}

func (s *Store) listSubscriptionUsers(ctx context.Context, query, id string) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, query, id)
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

// Subscribe creates a subscription edge. Fails with ErrAlreadyExists when the
// edge is already present and ErrForeignKey when either user does not exist.
func (s *Store) Subscribe(ctx context.Context, subscriberID, authorID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO subscriptions (subscriber_id, author_id)
		VALUES ($1, $2)
	`, subscriberID, authorID)
	if err != nil {
		s.logger.WithError(err).WithField("subscriber_id", subscriberID).Error("Failed to create subscription")
	}
	return translateError(err)
}

// Unsubscribe removes a subscription edge, failing with ErrNotFound when the
// edge does not exist.
func (s *Store) Unsubscribe(ctx context.Context, subscriberID, authorID string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM subscriptions
		WHERE subscriber_id = $1 AND author_id = $2
	`, subscriberID, authorID)
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

package store

import (
	"context"

	"github.com/google/uuid"

	"steward/pkg/models"
)

// CreateProfileParams holds the required fields for a new profile
type CreateProfileParams struct {
	UserID       string
	MemberTypeID string
	IsMale       bool
	YearOfBirth  int
}

// UpdateProfileParams holds the optional fields for a partial profile update.
// The user binding is immutable, so there is no UserID here.
type UpdateProfileParams struct {
	MemberTypeID *string
	IsMale       *bool
	YearOfBirth  *int
}

// GetProfile fetches a single profile by id
func (s *Store) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.QueryRowContext(ctx, `
		SELECT id, is_male, year_of_birth, user_id, member_type_id
		FROM profiles
		WHERE id = $1
	`, id).Scan(&profile.ID, &profile.IsMale, &profile.YearOfBirth, &profile.UserID, &profile.MemberTypeID)
	if err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}

// GetProfileByUserID fetches the profile owned by the given user
func (s *Store) GetProfileByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.QueryRowContext(ctx, `
		SELECT id, is_male, year_of_birth, user_id, member_type_id
		FROM profiles
		WHERE user_id = $1
	`, userID).Scan(&profile.ID, &profile.IsMale, &profile.YearOfBirth, &profile.UserID, &profile.MemberTypeID)
	if err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}

// ListProfiles returns all profiles
func (s *Store) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, is_male, year_of_birth, user_id, member_type_id
		FROM profiles
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []models.Profile{}
	for rows.Next() {
		var profile models.Profile
		if err := rows.Scan(&profile.ID, &profile.IsMale, &profile.YearOfBirth, &profile.UserID, &profile.MemberTypeID); err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}
	return profiles, rows.Err()
}

// CreateProfile inserts a new profile and returns it. Fails with
// ErrAlreadyExists when the user already owns a profile and ErrForeignKey when
// the user or member type does not exist.
func (s *Store) CreateProfile(ctx context.Context, params CreateProfileParams) (*models.Profile, error) {
	profile := models.Profile{
		ID:           uuid.New().String(),
		IsMale:       params.IsMale,
		YearOfBirth:  params.YearOfBirth,
		UserID:       params.UserID,
		MemberTypeID: params.MemberTypeID,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (id, is_male, year_of_birth, user_id, member_type_id)
		VALUES ($1, $2, $3, $4, $5)
	`, profile.ID, profile.IsMale, profile.YearOfBirth, profile.UserID, profile.MemberTypeID)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", params.UserID).Error("Failed to create profile")
		return nil, translateError(err)
	}
	return &profile, nil
}

// UpdateProfile applies a partial update and returns the updated profile
func (s *Store) UpdateProfile(ctx context.Context, id string, params UpdateProfileParams) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.QueryRowContext(ctx, `
		UPDATE profiles
		SET member_type_id = COALESCE($1, member_type_id),
		    is_male = COALESCE($2, is_male),
		    year_of_birth = COALESCE($3, year_of_birth)
		WHERE id = $4
		RETURNING id, is_male, year_of_birth, user_id, member_type_id
	`, params.MemberTypeID, params.IsMale, params.YearOfBirth, id).Scan(
		&profile.ID, &profile.IsMale, &profile.YearOfBirth, &profile.UserID, &profile.MemberTypeID,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}

// DeleteProfile removes a profile by id
func (s *Store) DeleteProfile(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
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

package store

import (
	"context"

	"steward/pkg/models"
)

// GetMemberType fetches a single member type by id
func (s *Store) GetMemberType(ctx context.Context, id string) (*models.MemberType, error) {
	var mt models.MemberType
	err := s.db.QueryRowContext(ctx, `
		SELECT id, discount, posts_limit_per_month
		FROM member_types
		WHERE id = $1
	`, id).Scan(&mt.ID, &mt.Discount, &mt.PostsLimitPerMonth)
	if err != nil {
		return nil, translateError(err)
	}
	return &mt, nil
}

// ListMemberTypes returns all member types
func (s *Store) ListMemberTypes(ctx context.Context) ([]models.MemberType, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, discount, posts_limit_per_month FROM member_types`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memberTypes := []models.MemberType{}
	for rows.Next() {
		var mt models.MemberType
		if err := rows.Scan(&mt.ID, &mt.Discount, &mt.PostsLimitPerMonth); err != nil {
			return nil, err
		}
		memberTypes = append(memberTypes, mt)
	}
	return memberTypes, rows.Err()
}

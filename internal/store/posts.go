package store

import (
	"context"

	"github.com/google/uuid"

	"steward/pkg/models"
)

// CreatePostParams holds the required fields for a new post
type CreatePostParams struct {
	AuthorID string
	Title    string
	Content  string
}

// UpdatePostParams holds the optional fields for a partial post update
type UpdatePostParams struct {
	AuthorID *string
	Title    *string
	Content  *string
}

// GetPost fetches a single post by id
func (s *Store) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, content, author_id
		FROM posts
		WHERE id = $1
	`, id).Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID)
	if err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

// ListPosts returns all posts
func (s *Store) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.listPosts(ctx, `SELECT id, title, content, author_id FROM posts`)
}

// ListPostsByAuthor returns all posts authored by the given user
func (s *Store) ListPostsByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	return s.listPosts(ctx, `SELECT id, title, content, author_id FROM posts WHERE author_id = $1`, authorID)
}

func (s *Store) listPosts(ctx context.Context, query string, args ...interface{}) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// CreatePost inserts a new post and returns it. Fails with ErrForeignKey when
// the author does not exist.
func (s *Store) CreatePost(ctx context.Context, params CreatePostParams) (*models.Post, error) {
	post := models.Post{
		ID:       uuid.New().String(),
		Title:    params.Title,
		Content:  params.Content,
		AuthorID: params.AuthorID,
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO posts (id, title, content, author_id)
		VALUES ($1, $2, $3, $4)
	`, post.ID, post.Title, post.Content, post.AuthorID)
	if err != nil {
		s.logger.WithError(err).WithField("author_id", params.AuthorID).Error("Failed to create post")
		return nil, translateError(err)
	}
	return &post, nil
}

// UpdatePost applies a partial update and returns the updated post
func (s *Store) UpdatePost(ctx context.Context, id string, params UpdatePostParams) (*models.Post, error) {
	var post models.Post
	err := s.db.QueryRowContext(ctx, `
		UPDATE posts
		SET author_id = COALESCE($1, author_id),
		    title = COALESCE($2, title),
		    content = COALESCE($3, content)
		WHERE id = $4
		RETURNING id, title, content, author_id
	`, params.AuthorID, params.Title, params.Content, id).Scan(
		&post.ID, &post.Title, &post.Content, &post.AuthorID,
	)
	if err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

// DeletePost removes a post by id
func (s *Store) DeletePost(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
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

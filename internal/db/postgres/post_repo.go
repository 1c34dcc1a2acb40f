package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"postsvc/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post; Postgres assigns id, created_at and updated_at.
// Both timestamps come from the same statement so they are equal at creation.
func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (title, content, state, hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		post.Title, post.Content, string(post.State), post.Hash,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if isDuplicateTitle(err) {
			return posts.ErrDuplicateTitle
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetAll returns all posts in store-defined order (no ORDER BY)
func (r *postgresPostRepo) GetAll(ctx context.Context) ([]*posts.Post, error) {
	query := `
		SELECT id, title, content, state, hash, created_at, updated_at
		FROM posts
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	result := []*posts.Post{}
	for rows.Next() {
		var post posts.Post
		if err := rows.Scan(
			&post.ID, &post.Title, &post.Content, &post.State,
			&post.Hash, &post.CreatedAt, &post.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		result = append(result, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate post rows: %w", err)
	}

	return result, nil
}

// GetByID retrieves a post by its UUID
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	query := `
		SELECT id, title, content, state, hash, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	var post posts.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Title, &post.Content, &post.State,
		&post.Hash, &post.CreatedAt, &post.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return &post, nil
}

// Update persists the mutable columns and refreshes updated_at.
// updated_at uses the statement clock, so it lands strictly after the
// creation timestamp for any real update.
func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET title = $2, content = $3, state = $4, hash = $5, updated_at = clock_timestamp()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(
		ctx, query,
		post.ID, post.Title, post.Content, string(post.State), post.Hash,
	).Scan(&post.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return posts.ErrNotFound
	}
	if err != nil {
		if isDuplicateTitle(err) {
			return posts.ErrDuplicateTitle
		}
		return fmt.Errorf("failed to update post: %w", err)
	}

	return nil
}

// Delete removes the row permanently (hard delete, no tombstone)
func (r *postgresPostRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// isDuplicateTitle checks for a violation of the posts title unique constraint
func isDuplicateTitle(err error) bool {
	return strings.Contains(err.Error(), "duplicate key") &&
		strings.Contains(err.Error(), "posts_title_key")
}

package posts

import "context"

// Service defines the business logic interface for posts.
// Coordinates the repository and the event notifier: persist first, then
// notify, in strict order within a request.
type Service interface {
	// Create persists a new post with a freshly computed content hash.
	// A duplicate title surfaces as ErrDuplicateTitle.
	Create(ctx context.Context, req CreatePostRequest) (*Post, error)

	// GetAll returns every post in store-defined order.
	GetAll(ctx context.Context) ([]*Post, error)

	// GetByID returns the post for id. Fails with ErrInvalidID before any
	// store access when id is not a well-formed UUID, and with ErrNotFound
	// when no row matches.
	GetByID(ctx context.Context, id string) (*Post, error)

	// Update applies the fields present in req to the post, recomputing the
	// content hash when title or content changed.
	Update(ctx context.Context, id string, req UpdatePostRequest) (*Post, error)

	// Delete removes the post permanently.
	Delete(ctx context.Context, id string) error
}

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post; the store assigns id and timestamps.
	// Returns ErrDuplicateTitle on a title uniqueness violation.
	Create(ctx context.Context, post *Post) error

	// GetAll returns all posts in store-defined order
	GetAll(ctx context.Context) ([]*Post, error)

	// GetByID returns the post for id, or ErrNotFound
	GetByID(ctx context.Context, id string) (*Post, error)

	// Update persists title/content/state/hash and refreshes updated_at.
	// Returns ErrDuplicateTitle on a title uniqueness violation.
	Update(ctx context.Context, post *Post) error

	// Delete removes the row for id, or returns ErrNotFound
	Delete(ctx context.Context, id string) error
}

package posts

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"postsvc/internal/core/events"
)

type postService struct {
	repo     Repository
	notifier events.Notifier
}

// NewPostService creates a new post service
func NewPostService(repo Repository, notifier events.Notifier) Service {
	return &postService{
		repo:     repo,
		notifier: notifier,
	}
}

// Create persists a new post and emits post_created.
// Flow:
// 1. Apply the DRAFT default when no state was given
// 2. Compute the content hash from title + content
// 3. Persist (the store assigns id and timestamps)
// 4. Emit post_created with {id, title}
// Uniqueness is not pre-checked; the repository surfaces the store's
// conflict signal as ErrDuplicateTitle and it propagates as-is.
func (s *postService) Create(ctx context.Context, req CreatePostRequest) (*Post, error) {
	state := StateDraft
	if req.State != nil {
		state = *req.State
	}

	post := &Post{
		Title:   req.Title,
		Content: req.Content,
		State:   state,
		Hash:    ContentHash(req.Title, req.Content),
	}

	if err := s.repo.Create(ctx, post); err != nil {
		if IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.emit(ctx, events.PostCreated, post)

	return post, nil
}

// GetAll returns every post in store-defined order
func (s *postService) GetAll(ctx context.Context) ([]*Post, error) {
	return s.repo.GetAll(ctx)
}

// GetByID validates the id format before touching the store, then loads the post
func (s *postService) GetByID(ctx context.Context, id string) (*Post, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return post, nil
}

// Update applies the present fields of req to the post, recomputing the hash
// when title or content changed, and emits post_updated.
func (s *postService) Update(ctx context.Context, id string, req UpdatePostRequest) (*Post, error) {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	contentChanged := false
	if req.Title != nil {
		post.Title = *req.Title
		contentChanged = true
	}
	if req.Content != nil {
		post.Content = *req.Content
		contentChanged = true
	}
	if req.State != nil {
		post.State = *req.State
	}

	if contentChanged {
		post.Hash = ContentHash(post.Title, post.Content)
	}

	if err := s.repo.Update(ctx, post); err != nil {
		if IsConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	s.emit(ctx, events.PostUpdated, post)

	return post, nil
}

// Delete removes the post permanently and emits post_deleted
func (s *postService) Delete(ctx context.Context, id string) error {
	post, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, post.ID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.emit(ctx, events.PostDeleted, post)

	return nil
}

// emit publishes a mutation event with the {id, title} payload.
// Emission is best-effort on every path: a sink failure is logged and never
// fails the mutation that triggered it, matching the error-reporting path.
func (s *postService) emit(ctx context.Context, name string, post *Post) {
	payload := map[string]string{
		"id":    post.ID,
		"title": post.Title,
	}
	if err := s.notifier.Emit(ctx, name, payload); err != nil {
		log.Printf("Failed to emit %s event for post %s: %v", name, post.ID, err)
	}
}

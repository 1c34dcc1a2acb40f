package posts

import (
	"time"
)

// PostState is the lifecycle state of a post.
// Flat two-value enumeration; transitions are unrestricted field assignments.
type PostState string

const (
	StateDraft     PostState = "DRAFT"
	StatePublished PostState = "PUBLISHED"
)

// Valid reports whether s is one of the recognized states.
func (s PostState) Valid() bool {
	return s == StateDraft || s == StatePublished
}

// Post represents a post row in the database
type Post struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	State     PostState `json:"state" db:"state"`
	Hash      string    `json:"hash" db:"hash"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreatePostRequest represents input for creating a new post.
// State is optional and defaults to DRAFT when omitted.
type CreatePostRequest struct {
	Title   string     `json:"title" validate:"required,min=3,max=100"`
	Content string     `json:"content" validate:"required,min=3"`
	State   *PostState `json:"state,omitempty" validate:"omitempty,oneof=DRAFT PUBLISHED"`
}

// UpdatePostRequest represents input for a partial update.
// Each field is independently optional; nil leaves the field unchanged.
type UpdatePostRequest struct {
	Title   *string    `json:"title,omitempty" validate:"omitempty,min=3,max=100"`
	Content *string    `json:"content,omitempty" validate:"omitempty,min=3"`
	State   *PostState `json:"state,omitempty" validate:"omitempty,oneof=DRAFT PUBLISHED"`
}

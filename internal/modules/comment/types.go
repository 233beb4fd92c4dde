package comment

import "errors"

const (
	// Content length bounds, counted after trimming.
	MinContentLength = 10
	MaxContentLength = 2000
)

var (
	ErrMissingField         = errors.New("missing required field")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidLength        = errors.New("content length out of range")
	ErrVerificationRequired = errors.New("verification token required")
	ErrVerificationFailed   = errors.New("verification failed")
	ErrPersistence          = errors.New("failed to persist comment")
)

// CreateInput is the client payload of the write path. RemoteIP and UserAgent
// are filled server-side, never from the body.
type CreateInput struct {
	ProjectSlug string `json:"project_slug"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	Content     string `json:"content"`

	RemoteIP  string `json:"-"`
	UserAgent string `json:"-"`
}

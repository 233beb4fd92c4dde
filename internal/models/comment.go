package models

import "time"

// CommentStatus is the moderation state of a comment.
//
// The current write path auto-approves everything; pending and rejected are
// reachable only through out-of-band moderation and exist so the read path
// can filter on them.
type CommentStatus string

const (
	CommentPending  CommentStatus = "pending"
	CommentApproved CommentStatus = "approved"
	CommentRejected CommentStatus = "rejected"
)

// CommentModel is a visitor comment attached to a project or blog post by
// slug. The slug is not a database-level foreign key; content lives in the
// external store.
type CommentModel struct {
	Base
	ProjectSlug string        `json:"project_slug" gorm:"not null;index"`
	AuthorName  string        `json:"author_name"  gorm:"not null"`
	AuthorEmail string        `json:"author_email,omitempty"`
	Content     string        `json:"content"      gorm:"type:text;not null"`
	Status      CommentStatus `json:"status"       gorm:"type:varchar(16);default:'pending';index"`
	IP          string        `json:"ip_address,omitempty"`
	Agent       string        `json:"user_agent,omitempty" gorm:"type:varchar(512)"`
}

func (CommentModel) TableName() string { return "comments" }

// PublicComment is the projection exposed by the public read path. Email,
// moderation state and forensic metadata never leave the server.
type PublicComment struct {
	ID          string    `json:"id"`
	ProjectSlug string    `json:"project_slug"`
	AuthorName  string    `json:"author_name"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

// Public returns the read-path projection of a comment.
func (c *CommentModel) Public() PublicComment {
	return PublicComment{
		ID:          c.ID,
		ProjectSlug: c.ProjectSlug,
		AuthorName:  c.AuthorName,
		Content:     c.Content,
		CreatedAt:   c.CreatedAt,
	}
}

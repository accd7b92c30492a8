package models

import "time"

type Blog struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   int64     `json:"author_id"`
	CategoryID int64     `json:"category_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SavedBlog is a user-saved-blog relation. At most one live row exists per
// (UserID, BlogID) pair; rows are physically removed on unsave, never
// soft-deleted.
type SavedBlog struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	BlogID    int64     `json:"blog_id"`
	CreatedAt time.Time `json:"created_at"`
}

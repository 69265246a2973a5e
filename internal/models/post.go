package models

// BlogPostDB represents a blog post record in the database.
// Username is a denormalized copy of the author's name taken at
// write time.
type BlogPostDB struct {
	ID       int64  `json:"id" db:"id"`             // Primary key
	UserID   int64  `json:"userId" db:"user_id"`    // Author
	Username string `json:"username" db:"username"` // Author name snapshot
	Title    string `json:"title" db:"title"`
	Story    string `json:"story" db:"story"` // Body text
	Topic    string `json:"topic" db:"topic"`
}

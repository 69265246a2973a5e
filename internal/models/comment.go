package models

// MaxCommentLength bounds the comment body, matching the column width.
const MaxCommentLength = 600

// CommentDB represents a comment record in the database.
// Username and Image are point-in-time snapshots of the author's
// profile, copied at write time and deliberately not kept in sync with
// later profile edits.
type CommentDB struct {
	ID       int64  `json:"id" db:"id"`             // Primary key
	Comment  string `json:"comment" db:"comment"`   // Body, at most MaxCommentLength chars
	UserID   int64  `json:"userId" db:"user_id"`    // Author
	Username string `json:"username" db:"username"` // Author name snapshot
	Image    string `json:"image" db:"image"`       // Author avatar snapshot
	PostID   int64  `json:"postId" db:"post_id"`    // Owning post
}

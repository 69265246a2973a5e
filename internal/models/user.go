package models

// UserDB represents a user record in the database.
type UserDB struct {
	ID           int64  `json:"id" db:"id"`             // Primary key
	Username     string `json:"username" db:"username"` // Unique username
	Image        string `json:"image" db:"image"`       // Avatar URL
	PasswordHash string `json:"-" db:"password_hash"`   // bcrypt hash, never serialized
}

// User is the safe view of a user returned by the API.
// It never carries the password hash.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Image    string `json:"image"`
}

// View strips the password hash from a database row.
func (u UserDB) View() User {
	return User{
		ID:       u.ID,
		Username: u.Username,
		Image:    u.Image,
	}
}

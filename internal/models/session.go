package models

import "time"

// SessionDB represents a session record in the database.
// A session is valid only while ExpiryTimestamp is strictly in the
// future; a user may hold any number of concurrent sessions.
type SessionDB struct {
	ID              int64     `json:"id" db:"id"`                            // Primary key
	Token           string    `json:"token" db:"token"`                      // Opaque, unguessable token
	UserID          int64     `json:"userId" db:"user_id"`                   // Owning user
	ExpiryTimestamp time.Time `json:"expiryTimestamp" db:"expiry_timestamp"` // Validity cutoff
}

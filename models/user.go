package models

import "time"

// User represents a field-data account used for authentication and site
// ownership. Credential material never leaves the server boundary.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier, used during authentication.
	Login string `json:"login"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password carries the plaintext password on register/login requests
	// only. It is never persisted; the server stores a bcrypt hash.
	Password string `json:"password,omitempty"`

	// PasswordHash is the stored bcrypt hash. Never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

package models

import "time"

// UserDB represents a user record in the database.
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                       // Primary key
	Username     string    `json:"username" db:"username"`           // Unique username
	Email        string    `json:"email" db:"email"`                 // Unique email
	PasswordHash string    `json:"-" db:"password_hash"`             // Bcrypt password hash, never serialized
	IsArtist     bool      `json:"is_artist" db:"is_artist"`         // Whether the user may list artworks
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
}

// User is the public user summary returned by auth and profile endpoints.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsArtist bool   `json:"is_artist"`
}

// Summary converts a database row into its public representation.
func (u *UserDB) Summary() *User {
	return &User{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsArtist: u.IsArtist,
	}
}

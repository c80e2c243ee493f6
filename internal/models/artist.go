package models

import "time"

// ArtistDB represents an artist profile record in the database.
type ArtistDB struct {
	ID           int64     `json:"id" db:"id"`                         // Primary key
	UserID       int64     `json:"user_id" db:"user_id"`               // Owning user
	Name         string    `json:"name" db:"name"`                     // Public display name
	Bio          string    `json:"bio" db:"bio"`                       // Free-text biography
	Specialty    string    `json:"specialty" db:"specialty"`           // Free-text specialty
	ProfileImage string    `json:"profile_image" db:"profile_image"`   // Optional image reference
	Featured     bool      `json:"featured" db:"featured"`             // Shown on the landing page
	CreatedAt    time.Time `json:"created_at" db:"created_at"`         // Creation timestamp
}

// ArtistView is a directory entry enriched with the artwork count.
type ArtistView struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Bio       string    `json:"bio" db:"bio"`
	Specialty string    `json:"specialty" db:"specialty"`
	Image     string    `json:"image" db:"profile_image"`
	Works     int64     `json:"works" db:"works"`
	Featured  bool      `json:"featured" db:"featured"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ArtistProfile is the artist section of the authenticated profile response.
type ArtistProfile struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Bio          string `json:"bio"`
	Specialty    string `json:"specialty"`
	ProfileImage string `json:"profile_image"`
	Featured     bool   `json:"featured"`
	ArtworkCount int64  `json:"artwork_count"`
}

// ArtistPage is one page of the artist directory.
type ArtistPage struct {
	Artists    []ArtistView `json:"artists"`
	Pagination Pagination   `json:"pagination"`
}

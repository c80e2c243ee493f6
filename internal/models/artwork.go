package models

import "time"

// UnknownArtist is the display name used when an artwork has no
// resolvable artist profile.
const UnknownArtist = "Unknown Artist"

// DefaultCategory is assigned when a listing omits its category.
const DefaultCategory = "contemporary"

// ArtworkDB represents an artwork listing record in the database.
type ArtworkDB struct {
	ID          int64     `json:"id" db:"id"`                   // Primary key
	Title       string    `json:"title" db:"title"`             // Listing title
	Description string    `json:"description" db:"description"` // Free-text description
	Category    string    `json:"category" db:"category"`       // Free-text category
	Price       float64   `json:"price" db:"price"`             // Starting price, non-negative
	ImageURL    string    `json:"image" db:"image_url"`         // Optional image reference
	UserID      int64     `json:"user_id" db:"user_id"`         // Owning user
	ArtistID    *int64    `json:"artist_id" db:"artist_id"`     // Owning artist profile, when present
	CreatedAt   time.Time `json:"created_at" db:"created_at"`   // Creation timestamp
}

// ArtworkView is a listing enriched with the resolved artist name.
type ArtworkView struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	Price       float64   `json:"price" db:"price"`
	Image       string    `json:"image" db:"image_url"`
	Artist      string    `json:"artist" db:"artist"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ArtworkPage is one page of the public artwork listing.
type ArtworkPage struct {
	Artworks   []ArtworkView `json:"artworks"`
	Pagination Pagination    `json:"pagination"`
}

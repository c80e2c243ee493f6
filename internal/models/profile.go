package models

import "time"

// Profile is the authenticated profile response. ArtistProfile is only
// present for artist-flagged users who have a profile row.
type Profile struct {
	ID            int64          `json:"id"`
	Username      string         `json:"username"`
	Email         string         `json:"email"`
	IsArtist      bool           `json:"is_artist"`
	CreatedAt     time.Time      `json:"created_at"`
	ArtistProfile *ArtistProfile `json:"artist_profile,omitempty"`
}

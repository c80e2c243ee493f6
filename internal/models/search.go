package models

// SearchArtwork is an artwork entry of the unified search response.
type SearchArtwork struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Artist      string  `json:"artist"`
	Type        string  `json:"type"`
}

// SearchArtist is an artist entry of the unified search response.
type SearchArtist struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	Specialty string `json:"specialty"`
	Image     string `json:"image"`
	Works     int64  `json:"works"`
	Type      string `json:"type"`
}

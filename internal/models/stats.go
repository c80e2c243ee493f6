package models

// Stats holds marketplace-wide counters. The auction and bid totals are
// fixed at zero until a real bidding engine exists.
type Stats struct {
	TotalArtworks  int64 `json:"total_artworks"`
	TotalArtists   int64 `json:"total_artists"`
	TotalAuctions  int64 `json:"total_auctions"`
	ActiveAuctions int64 `json:"active_auctions"`
	TotalUsers     int64 `json:"total_users"`
	TotalBids      int64 `json:"total_bids"`
}

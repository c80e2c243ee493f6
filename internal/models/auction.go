package models

// AuctionArtwork is the artwork section of a synthetic auction view.
type AuctionArtwork struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Auction is a read-only, non-persistent view that fabricates bid and
// status fields from an artwork's stored price and id. It is a
// placeholder for a real bidding engine, kept so the response shape
// survives when one replaces it.
type Auction struct {
	ID            int64          `json:"id"`
	Artwork       AuctionArtwork `json:"artwork"`
	StartingBid   float64        `json:"starting_bid"`
	CurrentBid    float64        `json:"current_bid"`
	Status        string         `json:"status"`
	EndTime       string         `json:"end_time"`
	BidCount      int64          `json:"bid_count"`
	TimeRemaining string         `json:"time_remaining"`
}

// AuctionPage is the auction listing response.
type AuctionPage struct {
	Auctions   []Auction  `json:"auctions"`
	Pagination Pagination `json:"pagination"`
}

package services

import (
	"context"
	"time"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
)

// AuctionService fabricates a read-only auction view over the artwork
// table. There is no bidding engine behind it: the bid figures are
// derived from the stored price and id so the frontend has stable data
// to render. A real engine can replace this service without changing
// the response shape.
type AuctionService struct {
	artworks ArtworkReader
}

// NewAuctionService creates a new AuctionService instance.
func NewAuctionService(artworks ArtworkReader) *AuctionService {
	return &AuctionService{artworks: artworks}
}

// ListAuctions maps every artwork to a synthetic live auction.
func (svc *AuctionService) ListAuctions(ctx context.Context) (*models.AuctionPage, error) {
	artworks, err := svc.artworks.ListAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list artworks for auctions", "err", err)
		return nil, err
	}

	endTime := time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339)

	auctions := []models.Auction{}
	for _, w := range artworks {
		auctions = append(auctions, models.Auction{
			ID: w.ID,
			Artwork: models.AuctionArtwork{
				ID:          w.ID,
				Title:       w.Title,
				Artist:      w.Artist,
				Image:       w.Image,
				Category:    w.Category,
				Description: w.Description,
			},
			StartingBid:   w.Price,
			CurrentBid:    w.Price + float64(w.ID)*100, // placeholder bid simulation
			Status:        "live",
			EndTime:       endTime,
			BidCount:      w.ID * 2, // placeholder bid simulation
			TimeRemaining: "23:59:59",
		})
	}

	pages := 0
	if len(auctions) > 0 {
		pages = 1
	}

	return &models.AuctionPage{
		Auctions: auctions,
		Pagination: models.Pagination{
			Page:    1,
			Pages:   pages,
			PerPage: DefaultPerPage,
			Total:   int64(len(auctions)),
		},
	}, nil
}

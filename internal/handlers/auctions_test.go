package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/kunsthaus/canvas-bids/internal/models"
)

func TestListAuctionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	page := &models.AuctionPage{
		Auctions: []models.Auction{
			{
				ID: 1,
				Artwork: models.AuctionArtwork{
					ID:     1,
					Title:  "Sunset Dreams",
					Artist: "Sarah Mitchell",
				},
				StartingBid:   3200,
				CurrentBid:    3300,
				Status:        "live",
				BidCount:      2,
				TimeRemaining: "23:59:59",
			},
		},
		Pagination: models.Pagination{Page: 1, Pages: 1, PerPage: 12, Total: 1},
	}

	tests := []struct {
		name          string
		mockSetup     func(m *MockAuctionLister)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			mockSetup: func(m *MockAuctionLister) {
				m.EXPECT().
					ListAuctions(gomock.Any()).
					Return(page, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockAuctionLister) {
				m.EXPECT().
					ListAuctions(gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAuctionLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewListAuctionsHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/auctions", nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp models.AuctionPage
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Len(t, resp.Auctions, 1)
			assert.Equal(t, "live", resp.Auctions[0].Status)
			assert.Equal(t, "Sunset Dreams", resp.Auctions[0].Artwork.Title)
		})
	}
}

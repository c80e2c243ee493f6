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

func TestStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockStatsGetter(ctrl)
		mockSvc.EXPECT().
			GetStats(gomock.Any()).
			Return(&models.Stats{TotalArtworks: 3, TotalArtists: 3, TotalUsers: 3}, nil)

		handler := NewStatsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp models.Stats
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, int64(3), resp.TotalArtworks)
		assert.Equal(t, int64(3), resp.TotalArtists)
		assert.Equal(t, int64(3), resp.TotalUsers)
		assert.Zero(t, resp.TotalAuctions)
		assert.Zero(t, resp.ActiveAuctions)
		assert.Zero(t, resp.TotalBids)
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockStatsGetter(ctrl)
		mockSvc.EXPECT().
			GetStats(gomock.Any()).
			Return(nil, errors.New("database failure"))

		handler := NewStatsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Internal server error", resp.Error)
	})
}

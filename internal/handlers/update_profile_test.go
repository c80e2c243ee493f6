package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/kunsthaus/canvas-bids/internal/services"
)

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	email := "new@example.com"
	bio := "Updated biography"

	tests := []struct {
		name          string
		body          string
		tokenerSetup  func(m *MockTokener)
		mockSetup     func(m *MockProfileUpdater)
		expectedCode  int
		expectedError string
	}{
		{
			name: "partial update",
			body: `{"email":"new@example.com","bio":"Updated biography"}`,
			tokenerSetup: func(m *MockTokener) {
				authorizedTokener(m, 1)
			},
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), int64(1), services.UpdateProfileInput{
						Email: &email,
						Bio:   &bio,
					}).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "unknown fields are ignored",
			body: `{"bio":"Updated biography","unknown_field":42}`,
			tokenerSetup: func(m *MockTokener) {
				authorizedTokener(m, 1)
			},
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), int64(1), services.UpdateProfileInput{Bio: &bio}).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "unauthorized",
			body: `{}`,
			tokenerSetup: func(m *MockTokener) {
				m.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name: "email taken",
			body: `{"email":"new@example.com"}`,
			tokenerSetup: func(m *MockTokener) {
				authorizedTokener(m, 1)
			},
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), int64(1), gomock.Any()).
					Return(services.ErrEmailExists)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Email already exists",
		},
		{
			name: "user not found",
			body: `{"email":"new@example.com"}`,
			tokenerSetup: func(m *MockTokener) {
				authorizedTokener(m, 404)
			},
			mockSetup: func(m *MockProfileUpdater) {
				m.EXPECT().
					UpdateProfile(gomock.Any(), int64(404), gomock.Any()).
					Return(services.ErrUserNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "User not found",
		},
		{
			name: "invalid json",
			body: `{invalid json}`,
			tokenerSetup: func(m *MockTokener) {
				authorizedTokener(m, 1)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			tt.tokenerSetup(mockTokener)

			mockSvc := NewMockProfileUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewUpdateProfileHandler(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodPut, "/api/user/profile", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp UpdateProfileResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "Profile updated successfully", resp.Message)
		})
	}
}

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

func TestChangePasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		body          string
		tokenerSetup  func(m *MockTokener)
		mockSetup     func(m *MockPasswordChanger)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: `{"current_password":"password123","new_password":"newpassword456"}`,
			tokenerSetup: func(m *MockTokener) {
				authorizedTokener(m, 1)
			},
			mockSetup: func(m *MockPasswordChanger) {
				m.EXPECT().
					ChangePassword(gomock.Any(), int64(1), "password123", "newpassword456").
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
			name: "missing fields",
			body: `{"current_password":"password123"}`,
			tokenerSetup: func(m *MockTokener) {
				authorizedTokener(m, 1)
			},
			mockSetup: func(m *MockPasswordChanger) {
				m.EXPECT().
					ChangePassword(gomock.Any(), int64(1), "password123", "").
					Return(services.ErrMissingFields)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Current password and new password are required",
		},
		{
			name: "wrong current password",
			body: `{"current_password":"wrongpass","new_password":"newpassword456"}`,
			tokenerSetup: func(m *MockTokener) {
				authorizedTokener(m, 1)
			},
			mockSetup: func(m *MockPasswordChanger) {
				m.EXPECT().
					ChangePassword(gomock.Any(), int64(1), "wrongpass", "newpassword456").
					Return(services.ErrInvalidCredentials)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Current password is incorrect",
		},
		{
			name: "weak new password",
			body: `{"current_password":"password123","new_password":"short"}`,
			tokenerSetup: func(m *MockTokener) {
				authorizedTokener(m, 1)
			},
			mockSetup: func(m *MockPasswordChanger) {
				m.EXPECT().
					ChangePassword(gomock.Any(), int64(1), "password123", "short").
					Return(services.ErrWeakPassword)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "New password must be at least 8 characters long",
		},
		{
			name: "user not found",
			body: `{"current_password":"password123","new_password":"newpassword456"}`,
			tokenerSetup: func(m *MockTokener) {
				authorizedTokener(m, 404)
			},
			mockSetup: func(m *MockPasswordChanger) {
				m.EXPECT().
					ChangePassword(gomock.Any(), int64(404), "password123", "newpassword456").
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

			mockSvc := NewMockPasswordChanger(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewChangePasswordHandler(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodPost, "/api/user/change-password", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp ChangePasswordResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "Password changed successfully", resp.Message)
		})
	}
}

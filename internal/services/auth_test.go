package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/kunsthaus/canvas-bids/internal/models"
	"github.com/kunsthaus/canvas-bids/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		input     services.RegisterInput
		mockSetup func(users *services.MockUserReader, writer *services.MockUserWriter, artists *services.MockArtistWriter, jwt *services.MockJWTGenerator, events *services.MockEventWriter)
		wantErr   error
	}{
		{
			name: "successful collector registration",
			input: services.RegisterInput{
				Username: "collector",
				Email:    "collector@example.com",
				Password: "password123",
			},
			mockSetup: func(users *services.MockUserReader, writer *services.MockUserWriter, artists *services.MockArtistWriter, jwt *services.MockJWTGenerator, events *services.MockEventWriter) {
				users.EXPECT().ExistsByUsername(gomock.Any(), "collector").Return(false, nil)
				users.EXPECT().ExistsByEmail(gomock.Any(), "collector@example.com").Return(false, nil)
				writer.EXPECT().
					Save(gomock.Any(), "collector", "collector@example.com", gomock.Any(), false).
					Return(&models.UserDB{ID: 1, Username: "collector", Email: "collector@example.com"}, nil)
				jwt.EXPECT().Generate(gomock.Any(), int64(1)).Return("token123", nil)
				events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "artist registration provisions a profile",
			input: services.RegisterInput{
				Username:   "sarah_mitchell",
				Email:      "sarah@example.com",
				Password:   "password123",
				IsArtist:   true,
				ArtistName: "Sarah Mitchell",
				Bio:        "Abstract expressionist",
				Specialty:  "Abstract Expressionism",
			},
			mockSetup: func(users *services.MockUserReader, writer *services.MockUserWriter, artists *services.MockArtistWriter, jwt *services.MockJWTGenerator, events *services.MockEventWriter) {
				users.EXPECT().ExistsByUsername(gomock.Any(), "sarah_mitchell").Return(false, nil)
				users.EXPECT().ExistsByEmail(gomock.Any(), "sarah@example.com").Return(false, nil)
				writer.EXPECT().
					Save(gomock.Any(), "sarah_mitchell", "sarah@example.com", gomock.Any(), true).
					Return(&models.UserDB{ID: 2, Username: "sarah_mitchell", Email: "sarah@example.com", IsArtist: true}, nil)
				artists.EXPECT().
					Save(gomock.Any(), int64(2), "Sarah Mitchell", "Abstract expressionist", "Abstract Expressionism").
					Return(&models.ArtistDB{ID: 1, UserID: 2, Name: "Sarah Mitchell"}, nil)
				jwt.EXPECT().Generate(gomock.Any(), int64(2)).Return("token123", nil)
				events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "artist name defaults to username",
			input: services.RegisterInput{
				Username: "david_chen",
				Email:    "david@example.com",
				Password: "password123",
				IsArtist: true,
			},
			mockSetup: func(users *services.MockUserReader, writer *services.MockUserWriter, artists *services.MockArtistWriter, jwt *services.MockJWTGenerator, events *services.MockEventWriter) {
				users.EXPECT().ExistsByUsername(gomock.Any(), "david_chen").Return(false, nil)
				users.EXPECT().ExistsByEmail(gomock.Any(), "david@example.com").Return(false, nil)
				writer.EXPECT().
					Save(gomock.Any(), "david_chen", "david@example.com", gomock.Any(), true).
					Return(&models.UserDB{ID: 3, Username: "david_chen", IsArtist: true}, nil)
				artists.EXPECT().
					Save(gomock.Any(), int64(3), "david_chen", "", "").
					Return(&models.ArtistDB{ID: 2, UserID: 3, Name: "david_chen"}, nil)
				jwt.EXPECT().Generate(gomock.Any(), int64(3)).Return("token123", nil)
				events.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "missing fields",
			input:   services.RegisterInput{Username: "bob"},
			wantErr: services.ErrMissingFields,
		},
		{
			name: "weak password checked before duplicates",
			input: services.RegisterInput{
				Username: "bob",
				Email:    "bob@example.com",
				Password: "short",
			},
			wantErr: services.ErrWeakPassword,
		},
		{
			name: "username already exists",
			input: services.RegisterInput{
				Username: "sarah_mitchell",
				Email:    "other@example.com",
				Password: "password123",
			},
			mockSetup: func(users *services.MockUserReader, writer *services.MockUserWriter, artists *services.MockArtistWriter, jwt *services.MockJWTGenerator, events *services.MockEventWriter) {
				users.EXPECT().ExistsByUsername(gomock.Any(), "sarah_mitchell").Return(true, nil)
			},
			wantErr: services.ErrUsernameExists,
		},
		{
			name: "email already exists",
			input: services.RegisterInput{
				Username: "newuser",
				Email:    "sarah@example.com",
				Password: "password123",
			},
			mockSetup: func(users *services.MockUserReader, writer *services.MockUserWriter, artists *services.MockArtistWriter, jwt *services.MockJWTGenerator, events *services.MockEventWriter) {
				users.EXPECT().ExistsByUsername(gomock.Any(), "newuser").Return(false, nil)
				users.EXPECT().ExistsByEmail(gomock.Any(), "sarah@example.com").Return(true, nil)
			},
			wantErr: services.ErrEmailExists,
		},
		{
			name: "writer error",
			input: services.RegisterInput{
				Username: "carol",
				Email:    "carol@example.com",
				Password: "password123",
			},
			mockSetup: func(users *services.MockUserReader, writer *services.MockUserWriter, artists *services.MockArtistWriter, jwt *services.MockJWTGenerator, events *services.MockEventWriter) {
				users.EXPECT().ExistsByUsername(gomock.Any(), "carol").Return(false, nil)
				users.EXPECT().ExistsByEmail(gomock.Any(), "carol@example.com").Return(false, nil)
				writer.EXPECT().
					Save(gomock.Any(), "carol", "carol@example.com", gomock.Any(), false).
					Return(nil, errors.New("save error"))
			},
			wantErr: errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockArtists := services.NewMockArtistWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)
			mockEvents := services.NewMockEventWriter(ctrl)

			if tt.mockSetup != nil {
				tt.mockSetup(mockUsers, mockWriter, mockArtists, mockJWT, mockEvents)
			}

			svc := services.NewAuthService(mockUsers, mockWriter, mockArtists, mockJWT, mockEvents)

			token, user, err := svc.Register(context.Background(), tt.input)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				assert.Nil(t, user)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "token123", token)
			assert.Equal(t, tt.input.Username, user.Username)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "password123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	user := &models.UserDB{ID: 1, Username: "sarah_mitchell", Email: "sarah@example.com", PasswordHash: string(hashed)}

	tests := []struct {
		name       string
		identifier string
		password   string
		mockSetup  func(users *services.MockUserReader, jwt *services.MockJWTGenerator)
		wantErr    error
	}{
		{
			name:       "login by username",
			identifier: "sarah_mitchell",
			password:   password,
			mockSetup: func(users *services.MockUserReader, jwt *services.MockJWTGenerator) {
				users.EXPECT().GetByIdentifier(gomock.Any(), "sarah_mitchell").Return(user, nil)
				jwt.EXPECT().Generate(gomock.Any(), int64(1)).Return("token123", nil)
			},
		},
		{
			name:       "login by email",
			identifier: "sarah@example.com",
			password:   password,
			mockSetup: func(users *services.MockUserReader, jwt *services.MockJWTGenerator) {
				users.EXPECT().GetByIdentifier(gomock.Any(), "sarah@example.com").Return(user, nil)
				jwt.EXPECT().Generate(gomock.Any(), int64(1)).Return("token123", nil)
			},
		},
		{
			name:       "missing fields",
			identifier: "sarah_mitchell",
			wantErr:    services.ErrMissingFields,
		},
		{
			name:       "unknown user gets the same error as a wrong password",
			identifier: "ghost",
			password:   password,
			mockSetup: func(users *services.MockUserReader, jwt *services.MockJWTGenerator) {
				users.EXPECT().GetByIdentifier(gomock.Any(), "ghost").Return(nil, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:       "wrong password",
			identifier: "sarah_mitchell",
			password:   "wrongpass",
			mockSetup: func(users *services.MockUserReader, jwt *services.MockJWTGenerator) {
				users.EXPECT().GetByIdentifier(gomock.Any(), "sarah_mitchell").Return(user, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:       "reader error",
			identifier: "sarah_mitchell",
			password:   password,
			mockSetup: func(users *services.MockUserReader, jwt *services.MockJWTGenerator) {
				users.EXPECT().GetByIdentifier(gomock.Any(), "sarah_mitchell").Return(nil, errors.New("db error"))
			},
			wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := services.NewMockUserReader(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)

			if tt.mockSetup != nil {
				tt.mockSetup(mockUsers, mockJWT)
			}

			svc := services.NewAuthService(mockUsers, services.NewMockUserWriter(ctrl), services.NewMockArtistWriter(ctrl), mockJWT, nil)

			token, got, err := svc.Login(context.Background(), tt.identifier, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
				assert.Nil(t, got)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "token123", token)
			assert.Equal(t, "sarah_mitchell", got.Username)
		})
	}
}

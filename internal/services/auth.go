package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
)

// Error variables
var (
	ErrMissingFields      = errors.New("username, email, and password are required")
	ErrWeakPassword       = errors.New("password must be at least 8 characters long")
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 8

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.UserDB, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	EmailTakenByOther(ctx context.Context, email string, userID int64) (bool, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string, isArtist bool) (*models.UserDB, error)
	UpdateEmail(ctx context.Context, userID int64, email string) error
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// JWTGenerator defines an interface for generating bearer tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// RegisterInput is the payload accepted by Register. The artist fields
// only apply when IsArtist is set.
type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	IsArtist   bool
	ArtistName string
	Bio        string
	Specialty  string
}

// AuthService handles registration and login.
type AuthService struct {
	users        UserReader
	userWriter   UserWriter
	artistWriter ArtistWriter
	jwt          JWTGenerator
	events       EventWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserReader, userWriter UserWriter, artistWriter ArtistWriter, jwt JWTGenerator, events EventWriter) *AuthService {
	return &AuthService{
		users:        users,
		userWriter:   userWriter,
		artistWriter: artistWriter,
		jwt:          jwt,
		events:       events,
	}
}

// Register validates the input, creates the user (and an artist profile
// when requested), and returns a fresh token with the public summary.
// Validation order: missing fields, weak password, duplicate username,
// duplicate email.
func (svc *AuthService) Register(ctx context.Context, in RegisterInput) (string, *models.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return "", nil, ErrMissingFields
	}
	if len(in.Password) < MinPasswordLength {
		return "", nil, ErrWeakPassword
	}

	taken, err := svc.users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "username", in.Username, "err", err)
		return "", nil, err
	}
	if taken {
		return "", nil, ErrUsernameExists
	}

	taken, err = svc.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check email", "email", in.Email, "err", err)
		return "", nil, err
	}
	if taken {
		return "", nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", nil, err
	}

	user, err := svc.userWriter.Save(ctx, in.Username, in.Email, string(hashedPassword), in.IsArtist)
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", in.Username, "err", err)
		return "", nil, err
	}

	if user.IsArtist {
		name := in.ArtistName
		if name == "" {
			name = user.Username
		}
		if _, err := svc.artistWriter.Save(ctx, user.ID, name, in.Bio, in.Specialty); err != nil {
			logger.Log.Errorw("failed to save artist profile", "user_id", user.ID, "err", err)
			return "", nil, err
		}
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "user_id", user.ID, "err", err)
		return "", nil, err
	}

	publishEvent(ctx, svc.events, newEvent(models.EventUserRegistered, user.ID, user.ID))

	return token, user.Summary(), nil
}

// Login authenticates a user by username or email and returns a fresh
// token. The error never reveals whether the identifier or the password
// was wrong.
func (svc *AuthService) Login(ctx context.Context, identifier, password string) (string, *models.User, error) {
	if identifier == "" || password == "" {
		return "", nil, ErrMissingFields
	}

	user, err := svc.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		logger.Log.Errorw("failed to get user", "identifier", identifier, "err", err)
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "user_id", user.ID, "err", err)
		return "", nil, err
	}

	return token, user.Summary(), nil
}

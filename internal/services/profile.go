package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/kunsthaus/canvas-bids/internal/logger"
	"github.com/kunsthaus/canvas-bids/internal/models"
)

// UpdateProfileInput carries the partial field set accepted by
// UpdateProfile. Nil fields are left untouched.
type UpdateProfileInput struct {
	Email        *string
	ArtistName   *string
	Bio          *string
	Specialty    *string
	ProfileImage *string
}

// ProfileService handles the authenticated user's profile.
type ProfileService struct {
	users        UserReader
	userWriter   UserWriter
	artists      ArtistReader
	artistWriter ArtistWriter
	artworks     ArtworkReader
}

// NewProfileService creates a new ProfileService instance.
func NewProfileService(users UserReader, userWriter UserWriter, artists ArtistReader, artistWriter ArtistWriter, artworks ArtworkReader) *ProfileService {
	return &ProfileService{
		users:        users,
		userWriter:   userWriter,
		artists:      artists,
		artistWriter: artistWriter,
		artworks:     artworks,
	}
}

// GetProfile returns the profile for the user id, including the artist
// section with a live artwork count when the user is an artist.
func (svc *ProfileService) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile := &models.Profile{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsArtist:  user.IsArtist,
		CreatedAt: user.CreatedAt,
	}

	if user.IsArtist {
		artist, err := svc.artists.GetByUserID(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get artist profile", "user_id", userID, "err", err)
			return nil, err
		}
		if artist != nil {
			count, err := svc.artworks.CountByArtistID(ctx, artist.ID)
			if err != nil {
				logger.Log.Errorw("failed to count artworks", "artist_id", artist.ID, "err", err)
				return nil, err
			}
			profile.ArtistProfile = &models.ArtistProfile{
				ID:           artist.ID,
				Name:         artist.Name,
				Bio:          artist.Bio,
				Specialty:    artist.Specialty,
				ProfileImage: artist.ProfileImage,
				Featured:     artist.Featured,
				ArtworkCount: count,
			}
		}
	}

	return profile, nil
}

// UpdateProfile applies a partial update. The email is revalidated for
// uniqueness against other users; artist fields only apply when the user
// is an artist with an existing profile.
func (svc *ProfileService) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) error {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if in.Email != nil {
		taken, err := svc.users.EmailTakenByOther(ctx, *in.Email, userID)
		if err != nil {
			logger.Log.Errorw("failed to check email", "email", *in.Email, "err", err)
			return err
		}
		if taken {
			return ErrEmailExists
		}
		if err := svc.userWriter.UpdateEmail(ctx, userID, *in.Email); err != nil {
			logger.Log.Errorw("failed to update email", "user_id", userID, "err", err)
			return err
		}
	}

	if user.IsArtist && (in.ArtistName != nil || in.Bio != nil || in.Specialty != nil || in.ProfileImage != nil) {
		artist, err := svc.artists.GetByUserID(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get artist profile", "user_id", userID, "err", err)
			return err
		}
		if artist != nil {
			if err := svc.artistWriter.Update(ctx, artist.ID, in.ArtistName, in.Bio, in.Specialty, in.ProfileImage); err != nil {
				logger.Log.Errorw("failed to update artist profile", "artist_id", artist.ID, "err", err)
				return err
			}
		}
	}

	return nil
}

// ChangePassword verifies the current password and replaces the stored
// hash. Previously issued tokens stay valid until natural expiry.
func (svc *ProfileService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if currentPassword == "" || newPassword == "" {
		return ErrMissingFields
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	if len(newPassword) < MinPasswordLength {
		return ErrWeakPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.userWriter.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password", "user_id", userID, "err", err)
		return err
	}

	return nil
}

// ListUserArtworks returns every artwork owned by the user.
func (svc *ProfileService) ListUserArtworks(ctx context.Context, userID int64) ([]models.ArtworkView, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	artworks, err := svc.artworks.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list user artworks", "user_id", userID, "err", err)
		return nil, err
	}

	return artworks, nil
}

package handlers

import (
	"context"
	"net/http"

	"github.com/kunsthaus/canvas-bids/internal/jwt"
)

// Tokener defines the token operations protected handlers need to
// recover the caller identity.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// userIDFromRequest extracts and verifies the bearer token, returning
// the embedded user id.
func userIDFromRequest(ctx context.Context, r *http.Request, tokener Tokener) (int64, error) {
	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return 0, err
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		return 0, err
	}

	return claims.UserID, nil
}

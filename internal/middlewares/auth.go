package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/yaredtsegaye/blog-platform/internal/jwt"
	"github.com/yaredtsegaye/blog-platform/internal/logger"
)

// Tokener defines the token operations needed by the auth middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Revoker reports whether a user's tokens have been revoked.
type Revoker interface {
	IsRevoked(ctx context.Context, userID uuid.UUID) (bool, error)
}

// AuthMiddleware returns a middleware that extracts the session token from
// the x-auth-token header, verifies it, and stores the decoded claims in
// the request context. A missing token is rejected with 403, a token that
// fails verification with 400, and a revoked subject with 401.
func AuthMiddleware(tokener Tokener, revoker Revoker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				http.Error(w, "No token provided, access denied", http.StatusForbidden)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				http.Error(w, "Invalid token", http.StatusBadRequest)
				return
			}

			if revoker != nil {
				revoked, err := revoker.IsRevoked(ctx, claims.UserID)
				if err != nil {
					logger.Log.Errorw("revocation check failed", "err", err)
					http.Error(w, "Internal server error", http.StatusInternalServerError)
					return
				}
				if revoked {
					logger.Log.Errorw("revoked token rejected", "user_id", claims.UserID)
					http.Error(w, "Token revoked", http.StatusUnauthorized)
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(SetClaimsToContext(ctx, claims)))
		})
	}
}

// RequireRole returns a middleware that rejects requests whose authenticated
// role is not one of the given roles. It must run after AuthMiddleware.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaimsFromContext(r.Context())
			if claims == nil {
				http.Error(w, "No token provided, access denied", http.StatusForbidden)
				return
			}

			for _, role := range roles {
				if claims.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Log.Errorw("insufficient role", "user_id", claims.UserID, "role", claims.Role)
			http.Error(w, "You are not authorized to perform this action", http.StatusForbidden)
		})
	}
}

// claimsContextKey is an unexported type for claims keys in context.
type claimsContextKey struct{}

var claimsKey = claimsContextKey{}

// SetClaimsToContext stores decoded token claims in the context.
func SetClaimsToContext(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaimsFromContext retrieves the decoded token claims from the context.
// Returns nil if the request did not pass through AuthMiddleware.
func GetClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}

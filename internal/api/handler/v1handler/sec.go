package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"mailscout/internal/config"
	"mailscout/pkg/domain"
	"mailscout/pkg/serrors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SecHandlerOptions configure the bearer-token security handler.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key used to verify tokens.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates requests using RS256 signed bearer tokens. The
// token subject carries the user ID.
type SecHandler struct {
	key *rsa.PublicKey
}

// NewSecHandler creates a SecHandler from the given options.
func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{key: key}, nil
}

// ctxKey is a private context key type to avoid collisions with other packages.
type ctxKey string

// userIDKey is the context key under which the authenticated user ID is stored.
const userIDKey ctxKey = "UserID"

// GetUserIDFromContext returns the authenticated user ID stored by the
// security middleware, or the zero ID when the request is unauthenticated.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	if id, ok := ctx.Value(userIDKey).(domain.UserID); ok {
		return id
	}

	return domain.UserID{}
}

// Middleware validates the Authorization bearer token and stores the user ID
// from its subject claim in the request context.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			respondError(ctx, w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		claims := &jwt.RegisteredClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims,
			func(*jwt.Token) (any, error) { return s.key, nil },
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
		if err != nil || !parsed.Valid {
			respondError(ctx, w, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token"))

			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			respondError(ctx, w, serrors.With(serrors.ErrUnauthorized, "invalid token subject"))

			return
		}

		ctx = context.WithValue(ctx, userIDKey, domain.UserID(userID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"pricewatch/internal/config"
	"pricewatch/pkg/domain"
	"pricewatch/pkg/logger"
	"pricewatch/pkg/serrors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey string

// UserIDKey is the context key holding the authenticated domain.UserID.
const UserIDKey ctxKey = "UserID"

// BearerAuth carries the token of an Authorization: Bearer header.
type BearerAuth struct {
	Token string
}

type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying tokens. Empty disables
	// authentication.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates operators with RS256 signed JWTs whose subject
// is a user UUID.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || strings.TrimSpace(opts.PublicKey) == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// Enabled reports whether tokens are checked.
func (s *SecHandler) Enabled() bool { return s != nil && s.publicKey != nil }

// HandleBearerAuth verifies the token and stores its subject in the returned
// context under UserIDKey.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, operationName string, t BearerAuth) (context.Context, error) {
	if !s.Enabled() {
		return ctx, serrors.With(serrors.ErrUnauthorized, "authentication is not configured")
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(t.Token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	ctx = context.WithValue(ctx, UserIDKey, domain.UserID(userID))
	ctx = logger.WithFields(ctx, zap.String("userID", userID.String()), zap.String("operation", operationName))

	return ctx, nil
}

// Require guards next with bearer authentication when it is enabled.
func (s *SecHandler) Require(operationName string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.Enabled() {
			next(w, r)

			return
		}

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			Handler{}.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), operationName, BearerAuth{Token: strings.TrimSpace(token)})
		if err != nil {
			Handler{}.writeError(w, r, err)

			return
		}

		next(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext returns the authenticated user, or the zero UserID.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	userID, _ := ctx.Value(UserIDKey).(domain.UserID)

	return userID
}

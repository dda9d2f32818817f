package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"recon/internal/config"
	"recon/pkg/domain"
	"recon/pkg/serrors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CtxKey is a string-based type used for storing values in request contexts.
type CtxKey string

// UserIDKey is the context key under which the authenticated user ID is stored.
const UserIDKey CtxKey = "UserID"

// SecHandlerOptions configure bearer token validation.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates requests with RS256 signed JWTs whose subject is
// the user ID.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// HandleBearerAuth validates token and returns ctx carrying the user ID.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(userID)), nil
}

// Middleware rejects requests without a valid "Authorization: Bearer" header.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			writeUnauthorized(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
		if err != nil {
			writeUnauthorized(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="recon"`)
	writeJSON(r.Context(), w, http.StatusUnauthorized, Error{
		Code:    serrors.ErrUnauthorized.Error(),
		Message: serrors.MessageOf(err),
	})
}

// GetUserIDFromContext returns the authenticated user ID. It panics when
// called outside an authenticated route.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	return ctx.Value(UserIDKey).(domain.UserID) //nolint: forcetypeassert
}

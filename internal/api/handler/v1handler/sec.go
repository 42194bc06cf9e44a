package v1handler

import (
	"context"
	"countries/internal/api/specs/v1specs"
	"countries/internal/config"
	"countries/pkg/domain"
	"countries/pkg/logger"
	"countries/pkg/serrors"
	"crypto/rsa"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CtxKey is the type of the context keys set by this package.
type CtxKey string

// UserIDKey holds the domain.UserID of the authenticated caller.
const UserIDKey CtxKey = "UserID"

// SecHandlerOptions configures bearer token validation.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with. When it
	// is empty every bearer protected operation is rejected.
	PublicKey string
}

// NewSecHandlerOptions builds SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler validates RS256 bearer tokens whose subject is a user UUID.
type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

// Ensure SecHandler implements v1specs.SecurityHandler.
var _ v1specs.SecurityHandler = (*SecHandler)(nil)

// NewSecHandler builds a SecHandler from opts. Without a public key the
// handler rejects every token.
func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	sh := &SecHandler{
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
	if opts == nil || opts.PublicKey == "" {
		return sh, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}
	sh.publicKey = key

	return sh, nil
}

// HandleBearerAuth validates t and returns ctx carrying the caller's UserID.
func (s *SecHandler) HandleBearerAuth(
	ctx context.Context,
	operationName v1specs.OperationName,
	t v1specs.BearerAuth) (context.Context, error) {
	if s.publicKey == nil {
		return ctx, serrors.With(serrors.ErrUnauthorized, "bearer authentication is not configured")
	}

	var claims jwt.RegisteredClaims
	if _, err := s.parser.ParseWithClaims(t.Token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}); err != nil {
		logger.Debug(ctx, "rejected bearer token", zap.String("operation", operationName), zap.Error(err))

		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	uid, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}
	userID := domain.UserID(uid)

	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = logger.WithFields(ctx, zap.Stringer("user_id", userID))

	return ctx, nil
}

// UserIDFromContext returns the caller set by HandleBearerAuth.
func UserIDFromContext(ctx context.Context) (domain.UserID, bool) {
	userID, ok := ctx.Value(UserIDKey).(domain.UserID)

	return userID, ok
}

package middleware

import (
	"context"
	stdErrors "errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/cloud-kitchen/internal/errors"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/models"
	"github.com/aaravmahajanofficial/cloud-kitchen/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey uuid.UUID

var (
	UserContextKey = contextKey(uuid.New())

	// knownUserKey carries the claims of a correctly signed but expired token.
	knownUserKey = contextKey(uuid.New())
)

type AuthMiddleware struct {
	jwtKey []byte
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {

	return &AuthMiddleware{jwtKey: jwtKey}

}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))
			return
		}

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			logger.Warn("Invalid authorization header format")
			response.Error(w, errors.UnauthorizedError("Invalid authorization format"))
			return
		}

		claims, err := m.parse(tokenString)
		if err != nil {
			logger.Warn("JWT parsing failed", slog.String("error", err.Error()))
			response.Error(w, errors.UnauthorizedError("Invalid or expired token"))
			return
		}

		next.ServeHTTP(w, r.WithContext(m.withUser(r.Context(), logger, claims)))
	}
}

// OptionalAuthenticate lets guests through. A valid token attaches the user like
// Authenticate does; an expired one only records who the caller was.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())
		ctx := r.Context()

		if tokenString, ok := bearerToken(r.Header.Get("Authorization")); ok {
			claims, err := m.parse(tokenString)

			switch {
			case err == nil:
				ctx = m.withUser(ctx, logger, claims)
			case stdErrors.Is(err, jwt.ErrTokenExpired):
				logger.Debug("Expired token on optional route", slog.String("userId", claims.UserID.String()))
				ctx = context.WithValue(ctx, knownUserKey, claims)
			default:
				logger.Warn("Ignoring invalid token", slog.String("error", err.Error()))
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// parse returns the claims even when the only failure is expiry.
func (m *AuthMiddleware) parse(tokenString string) (*models.Claims, error) {

	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.jwtKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return claims, err
	}

	if !token.Valid {
		return claims, jwt.ErrTokenSignatureInvalid
	}

	return claims, nil
}

func (m *AuthMiddleware) withUser(ctx context.Context, logger *slog.Logger, claims *models.Claims) context.Context {

	ctx = context.WithValue(ctx, UserContextKey, claims)

	requestScopedLogger := logger.With(slog.String("userId", claims.UserID.String()))
	ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

	requestScopedLogger.Info("User authenticated")

	return ctx
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" || strings.Contains(token, " ") {
		return "", false
	}

	return token, true
}

// ClaimsFromContext returns the authenticated user, if any.
func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)
	return claims, ok && claims != nil
}

// SessionFromContext reports the caller and whether they are authenticated. A
// caller with an expired token is known but not authenticated.
func SessionFromContext(ctx context.Context) (*models.Claims, bool) {
	if claims, ok := ClaimsFromContext(ctx); ok {
		return claims, true
	}

	if claims, ok := ctx.Value(knownUserKey).(*models.Claims); ok && claims != nil {
		return claims, false
	}

	return nil, false
}

const (
	CartSessionHeader = "X-Cart-Session"

	maxCartSessionLength = 128
)

// CartSessionKey identifies the cart of the caller: the user id when
// authenticated, otherwise the client supplied cart session header.
func CartSessionKey(r *http.Request) (string, error) {

	if claims, ok := ClaimsFromContext(r.Context()); ok {
		return "user:" + claims.UserID.String(), nil
	}

	session := strings.TrimSpace(r.Header.Get(CartSessionHeader))
	if session == "" {
		return "", errors.BadRequestError("Cart session is required").
			WithDetail("Sign in or send the " + CartSessionHeader + " header")
	}

	if len(session) > maxCartSessionLength {
		return "", errors.BadRequestError("Cart session is too long")
	}

	return "guest:" + session, nil
}

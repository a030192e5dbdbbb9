package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/config"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/domain"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/i18n"
	"github.com/DanielPopoola/redeban-payment-bridge/internal/interfaces/rest"
	"github.com/golang-jwt/jwt/v5"
)

type subjectKey struct{}

// Auth requires an HS256 bearer token when cfg.JWTSecret is set and is a
// no-op otherwise.
func Auth(cfg config.AuthConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	if cfg.JWTSecret == "" {
		return func(next http.Handler) http.Handler { return next }
	}

	secret := []byte(cfg.JWTSecret)
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenStr == "" {
				unauthorized(w, r, logger)
				return
			}

			claims := &jwt.RegisteredClaims{}
			token, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				return secret, nil
			})
			if err != nil || !token.Valid {
				logger.Debug("rejected bearer token", "error", err)
				unauthorized(w, r, logger)
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SubjectFrom returns the authenticated token subject, if any.
func SubjectFrom(ctx context.Context) string {
	sub, _ := ctx.Value(subjectKey{}).(string)
	return sub
}

func unauthorized(w http.ResponseWriter, r *http.Request, logger *slog.Logger) {
	rest.WriteError(w, r, &domain.BridgeError{
		Code:    domain.ErrCodeUnauthorized,
		Message: i18n.Sprintf(r.Context(), domain.MsgUnauthorized),
	}, logger)
}

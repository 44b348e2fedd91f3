package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"

	"github.com/0xsj/overwatch-pkg/log"
	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-accounts/internal/port/outbound/authz"
)

const bearerPrefix = "Bearer "

// authMiddleware verifies the bearer token and attaches the caller principal
// to the request context. The token was issued elsewhere; this service only
// verifies the signature and reads the identity and scope claims.
func authMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				writeJSONError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "missing bearer token")
				return
			}

			token, err := jwt.Parse(
				strings.TrimPrefix(header, bearerPrefix),
				func(t *jwt.Token) (any, error) { return secret, nil },
				jwt.WithValidMethods([]string{"HS256"}),
			)
			if err != nil || !token.Valid {
				writeJSONError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "invalid bearer token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "invalid token claims")
				return
			}

			next.ServeHTTP(w, r.WithContext(withPrincipal(r.Context(), principalFromClaims(claims))))
		})
	}
}

func principalFromClaims(claims jwt.MapClaims) authz.Principal {
	p := authz.Principal{
		AccountID: types.None[types.ID](),
	}

	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		p.UserID = types.ID(sub)
	}

	// Pure admin tokens carry no account of their own.
	if accountID, ok := claims["account_id"].(string); ok && accountID != "" {
		p.AccountID = types.Some(types.ID(accountID))
	}

	if raw, ok := claims["scopes"].([]any); ok {
		scopes := make([]string, 0, len(raw))
		for _, s := range raw {
			if scope, ok := s.(string); ok {
				scopes = append(scopes, scope)
			}
		}
		p.Scopes = scopes
	}

	return p
}

// requestLogger logs one line per request with status and duration.
func requestLogger(logger log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("request",
				log.String("method", r.Method),
				log.String("path", r.URL.Path),
				log.Any("status", ww.Status()),
				log.String("duration", time.Since(start).String()),
				log.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

package middleware

import (
	"net/http"
	"strings"

	"fashion-shop/pkg/utils"

	"go.uber.org/zap"
)

// BearerAuth validates the Authorization header against the token
// issuer and attaches the decoded claims to the request context.
func BearerAuth(issuer *utils.TokenIssuer, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "No token provided", nil)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>", nil)
				return
			}

			claims := issuer.VerifyToken(parts[1])
			if claims == nil {
				logger.Warn("Invalid or expired token",
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid token", nil)
				return
			}

			ctx := utils.SetClaimsContext(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

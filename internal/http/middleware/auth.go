package middleware

import (
	"net/http"
	"strings"

	"gigbook/internal/auth"
	"gigbook/internal/logging"
)

// TokenParser validates bearer tokens.
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// Identify attaches the bearer token subject, when one is present and valid, to
// the request context for log enrichment. Requests without a token, or with an
// invalid one, pass through unchanged.
func Identify(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := parseBearerToken(r.Header.Get("Authorization"))
			if token != "" && parser != nil {
				if claims, err := parser.Parse(token); err == nil {
					r = r.WithContext(logging.ContextWithUserID(r.Context(), claims.Role+":"+claims.Subject))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func parseBearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

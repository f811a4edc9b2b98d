package auth

import (
	"context"
	"net/http"
)

// LocalDevVerifier accepts any token and returns a fixed development
// identity. It exists so the server can run against the in-memory
// store without Firebase credentials.
type LocalDevVerifier struct{}

// VerifyToken implements TokenVerifier with a static local user.
func (LocalDevVerifier) VerifyToken(context.Context, string) (*UserClaims, error) {
	return localDevClaims(), nil
}

// LocalDevMiddleware injects the development identity into every
// request without requiring an Authorization header.
func LocalDevMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserClaims(r.Context(), localDevClaims())))
		})
	}
}

func localDevClaims() *UserClaims {
	return &UserClaims{
		UID:         "local-dev-user",
		Email:       "dev@localhost",
		DisplayName: "Local Dev User",
		Verified:    true,
	}
}

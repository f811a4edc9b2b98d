package auth

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
)

// TokenVerifier turns a bearer token into user claims. FirebaseAuth is
// the production implementation; LocalDevVerifier serves development.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (*UserClaims, error)
}

// Middleware authenticates every request and stores the resulting
// claims on the request context. Public endpoints pass through
// unauthenticated.
func Middleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token, err := ExtractTokenFromHeader(r.Header.Get("Authorization"))
			if err != nil {
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}

			claims, err := verifier.VerifyToken(r.Context(), token)
			if err != nil {
				logrus.WithError(err).Debug("token verification failed")
				http.Error(w, "unauthenticated", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserClaims(r.Context(), claims)))
		})
	}
}

// DebugImpersonationMiddleware allows impersonation via header.
// ONLY use this in development - never in production!
func DebugImpersonationMiddleware(skipAuth bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if skipAuth {
				if impersonate := r.Header.Get("X-Debug-Impersonate-User"); impersonate != "" {
					claims := &UserClaims{
						UID:   impersonate,
						Email: impersonate + "@debug.local",
					}
					r = r.WithContext(WithUserClaims(r.Context(), claims))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// isPublicEndpoint checks if an endpoint should be accessible without authentication
func isPublicEndpoint(path string) bool {
	publicEndpoints := []string{
		"/health",
		"/ping",
	}

	for _, endpoint := range publicEndpoints {
		if path == endpoint {
			return true
		}
	}

	return false
}

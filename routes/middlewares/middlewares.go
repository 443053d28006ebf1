package middlewares

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/oauth"
)

// Creator middleware authorizes the bearer token and checks for the 'creator'
// role in its claims.
func Creator(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return chi.Chain(oauth.Authorize(secret, nil), creator).Handler(next)
	}
}

func creator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		isCreator := false
		if rolesClaim, ok := claims(r)["roles"]; ok {
			roles := strings.Split(rolesClaim, ",")
			for _, role := range roles {
				if role == "creator" {
					isCreator = true
					break
				}
			}
		}

		if !isCreator {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// WalletAddress returns the creator wallet claim carried by the token, empty
// when the account has no wallet configured.
func WalletAddress(r *http.Request) string {
	return claims(r)["wallet"]
}

func claims(r *http.Request) map[string]string {
	claims, _ := r.Context().Value(oauth.ClaimsContext).(map[string]string)
	return claims
}

package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/arjunkhanna/craftkart-backend/pkg/logger"
)

const cartSessionCookie = "ck_cart_session"

// CartSession reads the cart session cookie, minting a fresh id when the
// shopper arrives without one. The id scopes the Redis-backed cart and
// checkout state and is independent of the auth session.
func CartSession(ttl time.Duration, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(cartSessionCookie); err == nil {
				sessionID = cookie.Value
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cartSessionCookie,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := WithCartSession(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithCartSession(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

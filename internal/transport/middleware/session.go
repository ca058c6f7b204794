package middleware

import (
	"net/http"

	"github.com/heartmarshall/soundboard/internal/auth"
	"github.com/heartmarshall/soundboard/pkg/ctxutil"
)

// SessionCookie is the cookie holding the signed admin session token.
const SessionCookie = "soundboard_session"

type sessionValidator interface {
	Validate(token string) (auth.OAuthIdentity, error)
}

// Session resolves the session cookie into a ctxutil.Admin.
// Requests without a valid session pass through anonymously.
func Session(validator sessionValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(SessionCookie)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			identity, err := validator.Validate(c.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			admin := ctxutil.Admin{ID: identity.ProviderID, Username: identity.Username}
			if identity.AvatarURL != nil {
				admin.AvatarURL = *identity.AvatarURL
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithAdmin(r.Context(), admin)))
		})
	}
}

// RequireAdmin redirects anonymous requests to loginPath.
func RequireAdmin(loginPath string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.AdminFromCtx(r.Context()); !ok {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

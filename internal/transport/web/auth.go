package web

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/soundboard/internal/auth"
	"github.com/heartmarshall/soundboard/internal/transport/middleware"
)

// StateCookie holds the OAuth state between /login and /callback.
const StateCookie = "oauth_state"

const stateCookieMaxAge = 5 * 60

// login sends the browser to the Discord consent page.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	state, err := auth.GenerateState()
	if err != nil {
		h.log.ErrorContext(r.Context(), "generate oauth state", slog.String("error", err.Error()))
		h.renderMessage(w, r, http.StatusInternalServerError, "Internal server error.")
		return
	}

	http.SetCookie(w, h.cookie(StateCookie, state, stateCookieMaxAge))
	http.Redirect(w, r, h.verifier.AuthorizeURL(state), http.StatusFound)
}

// callback finishes the OAuth flow and issues the session cookie.
func (h *Handler) callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	if e := q.Get("error"); e != "" {
		h.log.InfoContext(ctx, "oauth denied", slog.String("error", e))
		h.renderMessage(w, r, http.StatusBadRequest, "Discord login was cancelled.")
		return
	}

	code, state := q.Get("code"), q.Get("state")
	c, err := r.Cookie(StateCookie)
	if code == "" || state == "" || err != nil ||
		subtle.ConstantTimeCompare([]byte(c.Value), []byte(state)) != 1 {
		h.log.WarnContext(ctx, "oauth state mismatch")
		h.renderMessage(w, r, http.StatusBadRequest, "Login session expired. Please try again.")
		return
	}
	http.SetCookie(w, h.cookie(StateCookie, "", -1))

	identity, err := h.verifier.VerifyCode(ctx, code)
	if err != nil {
		h.log.ErrorContext(ctx, "oauth verify failed", slog.String("error", err.Error()))
		h.renderMessage(w, r, http.StatusUnauthorized, "Discord login failed. Please try again.")
		return
	}

	if !h.cfg.IsUserAllowed(identity.ProviderID) {
		h.log.WarnContext(ctx, "admin login rejected",
			slog.String("user_id", identity.ProviderID),
			slog.String("username", identity.Username))
		h.renderMessage(w, r, http.StatusForbidden, "You are not allowed to use this panel.")
		return
	}

	token, err := h.sessions.Issue(*identity)
	if err != nil {
		h.log.ErrorContext(ctx, "issue session", slog.String("error", err.Error()))
		h.renderMessage(w, r, http.StatusInternalServerError, "Internal server error.")
		return
	}

	http.SetCookie(w, h.cookie(middleware.SessionCookie, token, int(h.sessions.TTL().Seconds())))
	h.log.InfoContext(ctx, "admin logged in",
		slog.String("user_id", identity.ProviderID),
		slog.String("username", identity.Username))
	http.Redirect(w, r, h.path("/"), http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.cookie(middleware.SessionCookie, "", -1))
	h.renderMessage(w, r, http.StatusOK, "You have been logged out.")
}

func (h *Handler) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     h.cookiePath(),
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shelf-auth/internal/logger"
	"shelf-auth/internal/session"
)

// signOut never returns an AuthResult: it redirects to /login on
// success and /error on failure.
func (h *Handler) signOut(c *gin.Context) {
	sess := h.currentSession(c)

	if sess != nil {
		if err := h.gateway.SignOut(c.Request.Context(), sess.Token.AccessToken); err != nil {
			// The provider still considers the session live; do not
			// pretend the user is signed out.
			logger.Error("provider sign-out failed", map[string]any{
				"error": err.Error(),
			})
			c.Redirect(http.StatusSeeOther, "/error")
			return
		}

		_ = h.sessions.Delete(c.Request.Context(), sess.SessionID)
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	c.Redirect(http.StatusSeeOther, "/login")
}

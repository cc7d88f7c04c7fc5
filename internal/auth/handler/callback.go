package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shelf-auth/internal/logger"
	"shelf-auth/internal/redirect"
)

// callback completes OAuth sign-in and password-recovery flows. The
// flow is linear; every step has a single terminal failure exit:
//
//	code? -> exchange -> fetch identity -> reconcile -> redirect
//
// Reconciliation is the one non-terminal step: profile sync is
// best-effort, not a login precondition.
func (h *Handler) callback(c *gin.Context) {
	origin := requestOrigin(c)

	// Sole catch-all of the callback flow. Other actions rely on the
	// router's default recovery behavior.
	defer func() {
		if r := recover(); r != nil {
			logger.Error("unexpected error in auth callback", map[string]any{
				"panic": r,
			})
			if !c.Writer.Written() {
				c.Redirect(http.StatusFound, origin+"/error")
			}
		}
	}()

	next := c.Query("next")

	code := c.Query("code")
	if code == "" {
		logger.Error("no code in callback URL", nil)
		c.Redirect(http.StatusFound, origin+"/auth/auth-code-error")
		return
	}

	sess, err := h.gateway.ExchangeCode(c.Request.Context(), code, getPKCEVerifier(c))
	if err != nil {
		logger.Error("session exchange failed", map[string]any{
			"error": err.Error(),
		})
		c.Redirect(http.StatusFound, origin+"/error")
		return
	}

	user, err := h.gateway.CurrentUser(c.Request.Context(), sess.Token.AccessToken)
	if err != nil {
		logger.Error("could not fetch user", map[string]any{
			"error": err.Error(),
		})
		c.Redirect(http.StatusFound, origin+"/error")
		return
	}
	sess.User = *user

	if _, err := h.reconciler.EnsureProfile(c.Request.Context(), user); err != nil {
		logger.Error("profile reconciliation failed", map[string]any{
			"email": user.Email,
			"error": err.Error(),
		})
	}

	if err := h.issueSession(c, sess); err != nil {
		logger.Error("failed to persist session", map[string]any{
			"error": err.Error(),
		})
	}

	dest := redirect.Resolve(origin, c.GetHeader("X-Forwarded-Host"), next, h.dev)
	c.Redirect(http.StatusFound, dest)
}

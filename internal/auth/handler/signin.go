package handler

import (
	"github.com/gin-gonic/gin"

	"shelf-auth/internal/auth"
	"shelf-auth/internal/logger"
)

func (h *Handler) signIn(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	if email == "" || password == "" {
		respond(c, auth.Failure(
			auth.NewError(auth.KindValidation, "email and password are required"),
		))
		return
	}

	sess, err := h.gateway.SignInWithPassword(c.Request.Context(), email, password)
	if err != nil {
		respond(c, auth.Failure(err))
		return
	}

	// Profile sync is best-effort: a write failure never undoes a
	// successful sign-in.
	if _, err := h.reconciler.EnsureProfile(c.Request.Context(), &sess.User); err != nil {
		logger.Error("profile reconciliation failed", map[string]any{
			"email": sess.User.Email,
			"error": err.Error(),
		})
	}

	if err := h.issueSession(c, sess); err != nil {
		logger.Error("failed to persist session", map[string]any{
			"error": err.Error(),
		})
	}

	respond(c, auth.Success(&sess.User))
}

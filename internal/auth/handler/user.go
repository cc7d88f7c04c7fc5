package handler

import (
	"github.com/gin-gonic/gin"

	"shelf-auth/internal/auth"
)

// currentUser reports the identity bound to the current session.
func (h *Handler) currentUser(c *gin.Context) {
	sess := h.currentSession(c)
	if sess == nil {
		respond(c, auth.Failure(
			auth.NewError(auth.KindIdentityFetch, "no active session"),
		))
		return
	}

	user, err := h.gateway.CurrentUser(c.Request.Context(), sess.Token.AccessToken)
	if err != nil {
		respond(c, auth.Failure(err))
		return
	}

	respond(c, auth.Success(user))
}

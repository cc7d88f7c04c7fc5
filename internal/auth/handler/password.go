package handler

import (
	"github.com/gin-gonic/gin"

	"shelf-auth/internal/auth"
)

func (h *Handler) forgotPassword(c *gin.Context) {
	email := c.PostForm("email")
	if email == "" {
		respond(c, auth.Failure(
			auth.NewError(auth.KindValidation, "email is required"),
		))
		return
	}

	redirectTo := requestOrigin(c) + "/reset-password"

	err := h.gateway.RequestPasswordReset(c.Request.Context(), email, redirectTo)
	if err != nil {
		respond(c, auth.Failure(err))
		return
	}

	respond(c, auth.Success(nil))
}

// resetPassword exchanges the recovery code for a temporary session
// and applies the new password with it. The temporary session lives
// only inside this request: it is never stored and never becomes a
// cookie, and the code is single-use at the provider.
func (h *Handler) resetPassword(c *gin.Context) {
	password := c.PostForm("password")
	code := c.PostForm("code")

	if password == "" || code == "" {
		respond(c, auth.Failure(
			auth.NewError(auth.KindValidation, "password and code are required"),
		))
		return
	}

	sess, err := h.gateway.ExchangeCode(c.Request.Context(), code, "")
	if err != nil {
		respond(c, auth.Failure(err))
		return
	}

	if err := h.gateway.UpdatePassword(c.Request.Context(), sess.Token.AccessToken, password); err != nil {
		respond(c, auth.Failure(err))
		return
	}

	respond(c, auth.Success(nil))
}

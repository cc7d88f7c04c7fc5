package handler

import (
	"github.com/gin-gonic/gin"

	"shelf-auth/internal/auth"
)

func (h *Handler) signUp(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	if email == "" || password == "" {
		respond(c, auth.Failure(
			auth.NewError(auth.KindValidation, "email and password are required"),
		))
		return
	}

	user, err := h.gateway.SignUp(c.Request.Context(), email, password, username)
	if err != nil {
		respond(c, auth.Failure(err))
		return
	}

	respond(c, auth.Success(user))
}

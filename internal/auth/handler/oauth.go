package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shelf-auth/internal/logger"
)

// signInWithOAuth starts the OAuth flow: it asks the provider for an
// authorization URL and redirects the browser there. Like signOut it
// never returns an AuthResult; failures redirect to /error.
func (h *Handler) signInWithOAuth(c *gin.Context) {
	providerName := c.PostForm("provider")
	if providerName == "" {
		c.Redirect(http.StatusSeeOther, "/error")
		return
	}

	_, codeChallenge := generatePKCE(c)

	redirectTo := requestOrigin(c) + "/auth/callback"

	authURL, err := h.gateway.AuthorizeURL(providerName, redirectTo, codeChallenge)
	if err != nil {
		logger.Error("oauth start failed", map[string]any{
			"provider": providerName,
			"error":    err.Error(),
		})
		c.Redirect(http.StatusSeeOther, "/error")
		return
	}

	c.Redirect(http.StatusSeeOther, authURL)
}

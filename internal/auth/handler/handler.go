package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shelf-auth/internal/auth"
	"shelf-auth/internal/auth/gateway"
	"shelf-auth/internal/profile"
	"shelf-auth/internal/session"
)

// Handler holds the auth action entry points. The gateway is an
// explicit dependency so tests can substitute a fake; nothing here
// constructs provider clients from ambient state.
type Handler struct {
	gateway    gateway.SessionGateway
	sessions   session.Store
	reconciler *profile.Reconciler
	dev        bool
}

func NewHandler(
	gw gateway.SessionGateway,
	sessions session.Store,
	reconciler *profile.Reconciler,
	dev bool,
) *Handler {
	return &Handler{
		gateway:    gw,
		sessions:   sessions,
		reconciler: reconciler,
		dev:        dev,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.POST("/auth/signup", h.signUp)
	r.POST("/auth/signin", h.signIn)
	r.POST("/auth/signout", h.signOut)
	r.POST("/auth/oauth", h.signInWithOAuth)
	r.GET("/auth/callback", h.callback)
	r.POST("/auth/forgot-password", h.forgotPassword)
	r.POST("/auth/reset-password", h.resetPassword)
	r.GET("/auth/user", h.currentUser)
}

// requestOrigin reconstructs the scheme://host origin of the request.
func requestOrigin(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

// respond maps a result to its HTTP status. Callers branch on Kind;
// the status code is only a transport hint.
func respond(c *gin.Context, res auth.Result) {
	status := http.StatusOK
	switch res.Kind {
	case "":
	case auth.KindValidation:
		status = http.StatusBadRequest
	case auth.KindDuplicateAccount:
		status = http.StatusConflict
	case auth.KindProfileWrite, auth.KindUnexpected:
		status = http.StatusInternalServerError
	default:
		status = http.StatusUnauthorized
	}
	c.JSON(status, res)
}

// issueSession persists the provider session server-side and hands the
// browser an opaque session ID cookie. The provider token never
// reaches the client.
func (h *Handler) issueSession(c *gin.Context, s *auth.Session) error {
	sessionID, err := session.GenerateID()
	if err != nil {
		return err
	}

	now := time.Now()
	expiresAt := s.Token.Expiry
	if expiresAt.IsZero() {
		expiresAt = now.Add(24 * time.Hour)
	}

	sess := session.Session{
		SessionID: sessionID,
		UserID:    s.User.ID,
		Token:     s.Token,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}

	if err := h.sessions.Create(c.Request.Context(), sess); err != nil {
		return err
	}

	session.SetCookie(c.Writer, sessionID, expiresAt, session.CookieOptions{
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// currentSession loads the session referenced by the request cookie,
// or nil when there is none.
func (h *Handler) currentSession(c *gin.Context) *session.Session {
	cookie, err := c.Request.Cookie(session.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	sess, err := h.sessions.Get(c.Request.Context(), cookie.Value)
	if err != nil || sess == nil {
		return nil
	}

	if time.Now().After(sess.ExpiresAt) {
		_ = h.sessions.Delete(c.Request.Context(), sess.SessionID)
		return nil
	}

	return sess
}

package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"shelf-auth/internal/auth/gateway"
	"shelf-auth/internal/auth/handler"
	"shelf-auth/internal/config"
	"shelf-auth/internal/middleware"
	"shelf-auth/internal/profile"
	"shelf-auth/internal/session"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	profileStore := profile.NewPostgresStore(infra.DB)
	reconciler := profile.NewReconciler(profileStore)

	gw, err := gateway.NewHTTPGateway(cfg.AuthBaseURL, cfg.AuthAnonKey)
	if err != nil {
		return nil, nil, err
	}

	authHandler := handler.NewHandler(
		gw,
		sessionStore,
		reconciler,
		cfg.IsDevelopment(),
	)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore, cfg.AuthJWTSecret)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	api.GET("/me", func(c *gin.Context) {
		userID, _ := middleware.UserIDFromContext(c.Request.Context())
		c.JSON(200, gin.H{
			"user_id": userID,
		})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}

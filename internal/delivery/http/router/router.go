// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"newsbite/internal/delivery/http/middleware"
	"newsbite/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SystemHandler  *handler.SystemHandler
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	NewsHandler    *handler.NewsHandler
	EmailHandler   *handler.EmailHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	systemHandler  *handler.SystemHandler
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	newsHandler    *handler.NewsHandler
	emailHandler   *handler.EmailHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		systemHandler:  params.SystemHandler,
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		newsHandler:    params.NewsHandler,
		emailHandler:   params.EmailHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Service info and health check
	e.GET("/", r.systemHandler.Root)
	e.GET("/health", r.systemHandler.Health)

	api := e.Group("/api/v1")

	// Auth routes drive the token service; all of them are public.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/login/google", r.authHandler.GoogleLogin)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/password-reset/request", r.authHandler.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", r.authHandler.ConfirmPasswordReset)
		authGroup.POST("/verify-email/request", r.authHandler.RequestEmailVerification)
		authGroup.POST("/verify-email/confirm", r.authHandler.ConfirmEmailVerification)
	}

	// Profile routes require a valid access token.
	userGroup := api.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetProfile)
		userGroup.PUT("/me", r.userHandler.UpdateProfile)
		userGroup.GET("/me/preferences", r.userHandler.GetPreferences)
		userGroup.PUT("/me/preferences", r.userHandler.UpdatePreferences)
	}

	// Article browsing is public; the content-management routes authenticate
	// here and enforce the admin role inside the usecase.
	newsGroup := api.Group("/news")
	{
		newsGroup.GET("", r.newsHandler.ListArticles)
		newsGroup.GET("/trending", r.newsHandler.GetTrendingKeywords)
		newsGroup.GET("/:id", r.newsHandler.GetArticle)
		newsGroup.POST("", r.newsHandler.IngestArticle, r.authMiddleware.Authenticate)
		newsGroup.POST("/:id/summary", r.newsHandler.AttachSummary, r.authMiddleware.Authenticate)
		newsGroup.POST("/:id/thumbnail-upload", r.newsHandler.PresignThumbnailUpload, r.authMiddleware.Authenticate)
	}

	// Email tracking and digest assembly, admin only.
	emailGroup := api.Group("/emails")
	emailGroup.Use(r.authMiddleware.Authenticate)
	{
		emailGroup.GET("/logs", r.emailHandler.ListLogs)
		emailGroup.GET("/digests", r.emailHandler.ListDigests)
		emailGroup.POST("/digests", r.emailHandler.BuildDigest)
	}
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"habitar/internal/delivery/http/middleware"
	"habitar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AccountHandler *handler.AccountHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	accountHandler *handler.AccountHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		accountHandler: params.AccountHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account flows; outcomes come back as 303 redirects.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/sign-up", r.authHandler.SignUp)
		authGroup.POST("/sign-in", r.authHandler.SignIn)
		authGroup.POST("/sign-out", r.authHandler.SignOut)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
	}

	// Self-service routes that require authentication
	accountGroup := e.Group("/account")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/subscription", r.accountHandler.GetSubscription)
	}

	// Administrative routes; role comes from the users table, not the token
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.PATCH("/users/:id/status", r.adminHandler.UpdateStatus)
		adminGroup.POST("/users/:id/suspend", r.adminHandler.SuspendUser)
		adminGroup.POST("/users/:id/activate", r.adminHandler.ActivateUser)
		adminGroup.POST("/users/:id/ban", r.adminHandler.BanUser)
	}
}

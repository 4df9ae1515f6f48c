// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"biudzetas/internal/delivery/http/middleware"
	"biudzetas/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	RecoveryHandler *handler.RecoveryHandler
	EntryHandler    *handler.EntryHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	recoveryHandler *handler.RecoveryHandler
	entryHandler    *handler.EntryHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		recoveryHandler: params.RecoveryHandler,
		entryHandler:    params.EntryHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The paths keep the original Lithuanian names.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Open routes
	e.POST("/registruotis", r.accountHandler.Register)
	e.POST("/prisijungti", r.accountHandler.Login)
	e.GET("/atsijungti", r.accountHandler.Logout)
	e.POST("/reset_password", r.recoveryHandler.RequestReset)
	e.POST("/reset_password/:token", r.recoveryHandler.ConfirmReset)

	// Routes that require a valid session
	authed := e.Group("")
	authed.Use(r.authMiddleware.Authenticate)
	{
		authed.GET("/paskyra", r.accountHandler.GetProfile)
		authed.POST("/paskyra", r.accountHandler.UpdateProfile)

		authed.GET("/irasai", r.entryHandler.List)
		authed.POST("/prideti_irasa", r.entryHandler.Create)
		authed.POST("/taisyti/:id", r.entryHandler.Update)
		authed.GET("/istrinti/:id", r.entryHandler.Delete)
	}

	// Admin routes require a session AND an email on the admin list
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/accounts", r.adminHandler.ListAccounts)
		adminGroup.GET("/entries", r.adminHandler.ListEntries)
	}
}

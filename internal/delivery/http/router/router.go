// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodies/internal/delivery/http/middleware"
	"foodies/internal/delivery/http/router/handler"
	"foodies/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	FoodHandler    *handler.FoodHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	foodHandler    *handler.FoodHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		foodHandler:    params.FoodHandler,
		cartHandler:    params.CartHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Catalog routes; reads are public, mutations require the admin role
	foodGroup := api.Group("/food")
	{
		foodGroup.GET("", r.foodHandler.List)
		foodGroup.GET("/:id", r.foodHandler.Get)

		adminFood := foodGroup.Group("")
		adminFood.Use(r.authMiddleware.Authenticate)
		adminFood.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
		adminFood.POST("", r.foodHandler.Create)
		adminFood.DELETE("/:id", r.foodHandler.Delete)
	}

	// Cart routes scoped to the authenticated user
	cartGroup := api.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.POST("", r.cartHandler.Add)
		cartGroup.POST("/remove", r.cartHandler.Remove)
		cartGroup.DELETE("", r.cartHandler.Clear)
	}

	// Order routes
	orderGroup := api.Group("/order")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("/user", r.orderHandler.ListMine)
		orderGroup.POST("/verify-payment", r.orderHandler.VerifyPayment)

		adminOrder := orderGroup.Group("")
		adminOrder.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
		adminOrder.GET("/all", r.orderHandler.ListAll)
		adminOrder.PUT("/:id/status", r.orderHandler.UpdateStatus)
		adminOrder.DELETE("/:id", r.orderHandler.Delete)
	}
}

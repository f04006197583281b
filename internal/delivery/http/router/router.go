// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sareeta/internal/delivery/http/middleware"
	"sareeta/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ItemHandler    *handler.ItemHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	itemHandler    *handler.ItemHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		itemHandler:    params.ItemHandler,
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

	// Account routes, no authentication required
	userGroup := api.Group("/user")
	{
		userGroup.POST("/create", r.userHandler.CreateUser)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.GET("/id/:id", r.userHandler.GetUserByID)
		userGroup.GET("/:username", r.userHandler.GetUserByUsername)
	}

	// Catalog routes, public
	itemGroup := api.Group("/item")
	{
		itemGroup.GET("", r.itemHandler.ListItems)
		itemGroup.GET("/name/:name", r.itemHandler.GetItemsByName)
		itemGroup.GET("/:id", r.itemHandler.GetItemByID)
	}

	// Cart routes require a valid bearer token
	cartGroup := api.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/add", r.cartHandler.AddToCart)
		cartGroup.POST("/remove", r.cartHandler.RemoveFromCart)
	}

	// Order routes require a valid bearer token
	orderGroup := api.Group("/order")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("/submit", r.orderHandler.SubmitOrder)
		orderGroup.GET("/history", r.orderHandler.OrderHistory)
		orderGroup.GET("/:id/qrcode", r.orderHandler.OrderPickupCode)
	}
}

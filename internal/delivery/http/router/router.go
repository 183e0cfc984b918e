// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	CartHandler       *handler.CartHandler
	DiscountHandler   *handler.DiscountHandler
	CheckoutHandler   *handler.CheckoutHandler
	WishlistHandler   *handler.WishlistHandler
	PreferenceHandler *handler.PreferenceHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	cartHandler       *handler.CartHandler
	discountHandler   *handler.DiscountHandler
	checkoutHandler   *handler.CheckoutHandler
	wishlistHandler   *handler.WishlistHandler
	preferenceHandler *handler.PreferenceHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		cartHandler:       params.CartHandler,
		discountHandler:   params.DiscountHandler,
		checkoutHandler:   params.CheckoutHandler,
		wishlistHandler:   params.WishlistHandler,
		preferenceHandler: params.PreferenceHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes
	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.Current)
		sessionGroup.POST("/login", r.sessionHandler.Login)
		sessionGroup.POST("/register", r.sessionHandler.Register)
		sessionGroup.POST("/guest", r.sessionHandler.LoginAsGuest)
		sessionGroup.POST("/logout", r.sessionHandler.Logout)
		sessionGroup.POST("/password-reset", r.sessionHandler.PasswordReset)
		sessionGroup.POST("/password-strength", r.sessionHandler.PasswordStrength)
	}

	// Cart routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.DELETE("", r.cartHandler.Clear)
		cartGroup.GET("/summary", r.cartHandler.Summary)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items/:index", r.cartHandler.ChangeQuantity)
		cartGroup.DELETE("/items/:index", r.cartHandler.RemoveItem)
	}

	// Discount routes
	discountGroup := e.Group("/discount")
	{
		discountGroup.GET("", r.discountHandler.Current)
		discountGroup.POST("/apply", r.discountHandler.Apply)
	}

	// Checkout handoff routes
	checkoutGroup := e.Group("/checkout")
	{
		checkoutGroup.GET("/message", r.checkoutHandler.Message)
		checkoutGroup.GET("/link", r.checkoutHandler.Link)
		checkoutGroup.GET("/qrcode", r.checkoutHandler.QRCode)
	}

	// Wishlist routes
	wishlistGroup := e.Group("/wishlist")
	{
		wishlistGroup.GET("", r.wishlistHandler.List)
		wishlistGroup.POST("/toggle", r.wishlistHandler.Toggle)
		wishlistGroup.DELETE("/:name", r.wishlistHandler.Remove)
		wishlistGroup.POST("/:name/cart", r.wishlistHandler.MoveToCart)
	}

	// Preference routes
	e.GET("/preferences", r.preferenceHandler.Get)
	e.PUT("/preferences", r.preferenceHandler.Update)
	e.POST("/newsletter/subscribe", r.preferenceHandler.SubscribeNewsletter)
}

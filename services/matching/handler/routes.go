package handler

import (
	"github.com/kurashiworks/kurashi/internal/pkg/middleware"
	"github.com/kurashiworks/kurashi/internal/pkg/models"
	"github.com/labstack/echo/v4"

	httpHandler "github.com/kurashiworks/kurashi/services/matching/handler/http"
)

// Handler aggregates the HTTP handlers of the matching service
type Handler struct {
	orderHandler    *httpHandler.OrderHandler
	matchingHandler *httpHandler.MatchingHandler
	cfg             *models.Config
}

// NewHandler creates a new handler aggregate
func NewHandler(
	orderHandler *httpHandler.OrderHandler,
	matchingHandler *httpHandler.MatchingHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		orderHandler:    orderHandler,
		matchingHandler: matchingHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes registers all service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	orders := e.Group("/orders", auth)
	orders.POST("", h.orderHandler.PlaceOrder)
	orders.GET("/:orderID", h.orderHandler.GetOrder)
	orders.POST("/:orderID/cancel", h.orderHandler.CancelOrder)
	orders.POST("/:orderID/accept", h.matchingHandler.AcceptOrder, middleware.RequireRole("professional"))

	professionals := e.Group("/professionals", auth, middleware.RequireRole("professional"))
	professionals.GET("/me/offers", h.matchingHandler.ListMyOffers)

	admin := e.Group("/admin", auth, middleware.RequireRole("admin"))
	admin.GET("/orders", h.orderHandler.ListOrders)
	admin.GET("/matching/sessions", h.matchingHandler.ListSessions)
	admin.POST("/orders/:orderID/rematch", h.orderHandler.RematchOrder)
}

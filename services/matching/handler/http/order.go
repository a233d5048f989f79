package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/kurashiworks/kurashi/internal/pkg/models"
	"github.com/kurashiworks/kurashi/internal/utils"
	"github.com/kurashiworks/kurashi/services/matching"
	"github.com/labstack/echo/v4"
)

// OrderHandler handles HTTP requests for order operations
type OrderHandler struct {
	matchingUC matching.MatchingUC
}

// NewOrderHandler creates a new order HTTP handler
func NewOrderHandler(matchingUC matching.MatchingUC) *OrderHandler {
	return &OrderHandler{matchingUC: matchingUC}
}

// PlaceOrderRequest is the request body for placing an order
type PlaceOrderRequest struct {
	ServiceID     string         `json:"service_id"`
	PlanID        string         `json:"plan_id"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	CustomerPhone string         `json:"customer_phone"`
	Address       models.Address `json:"address"`
}

// PlaceOrder handles order creation
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	if req.ServiceID == "" || req.PlanID == "" {
		return utils.BadRequestResponse(c, "service_id and plan_id are required")
	}
	if !utils.IsValidEmail(req.CustomerEmail) {
		return utils.BadRequestResponse(c, "customer_email is not a valid email address")
	}
	if !req.Address.Usable() {
		return utils.BadRequestResponse(c, "address requires prefecture and city")
	}

	order := &models.Order{
		ServiceID:     req.ServiceID,
		PlanID:        req.PlanID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
	}

	created, err := h.matchingUC.PlaceOrder(c.Request().Context(), order)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to place order")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Order placed", created)
}

// GetOrder returns a single order
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	order, err := h.matchingUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		if errors.Is(err, matching.ErrOrderNotFound) {
			return utils.NotFoundResponse(c, "Order not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get order")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", order)
}

// ListOrders returns all orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.matchingUC.ListOrders(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list orders")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", orders)
}

// CancelOrder cancels an order and stops any matching in flight
func (h *OrderHandler) CancelOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	if err := h.matchingUC.CancelOrder(c.Request().Context(), orderID); err != nil {
		if errors.Is(err, matching.ErrOrderNotFound) {
			return utils.NotFoundResponse(c, "Order not found")
		}
		return utils.ConflictResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Order cancelled", nil)
}

// RematchOrder restarts matching for a pending order
func (h *OrderHandler) RematchOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	if err := h.matchingUC.RematchOrder(c.Request().Context(), orderID); err != nil {
		if errors.Is(err, matching.ErrOrderNotFound) {
			return utils.NotFoundResponse(c, "Order not found")
		}
		return utils.ConflictResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Matching restarted", nil)
}

package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/kurashiworks/kurashi/internal/utils"
	"github.com/kurashiworks/kurashi/services/matching"
	"github.com/labstack/echo/v4"
)

// MatchingHandler handles HTTP requests for the matching engine
type MatchingHandler struct {
	matchingUC matching.MatchingUC
}

// NewMatchingHandler creates a new matching HTTP handler
func NewMatchingHandler(matchingUC matching.MatchingUC) *MatchingHandler {
	return &MatchingHandler{matchingUC: matchingUC}
}

// AcceptRequest is the request body for accepting an offer
type AcceptRequest struct {
	SelectedDate time.Time `json:"selected_date"`
}

// AcceptOrder handles a professional's claim on an offered order. The
// professional identity comes from the authenticated token.
func (h *MatchingHandler) AcceptOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid order ID")
	}

	professionalID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req AcceptRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.SelectedDate.IsZero() {
		return utils.BadRequestResponse(c, "selected_date is required")
	}

	if !h.matchingUC.Accept(c.Request().Context(), orderID, professionalID, req.SelectedDate) {
		return utils.ConflictResponse(c, "Order is no longer available")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Match finalized", echo.Map{
		"order_id":        orderID,
		"professional_id": professionalID,
	})
}

// ListMyOffers returns the authenticated professional's open offers
func (h *MatchingHandler) ListMyOffers(c echo.Context) error {
	professionalID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	offers, err := h.matchingUC.ListOffers(c.Request().Context(), professionalID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list offers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "", offers)
}

// ListSessions returns the live matching sessions for admin observability
func (h *MatchingHandler) ListSessions(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.matchingUC.ActiveSessions())
}

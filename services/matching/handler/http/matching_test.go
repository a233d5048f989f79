package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/kurashiworks/kurashi/internal/pkg/models"
	"github.com/kurashiworks/kurashi/services/matching/mocks"
)

func acceptContext(e *echo.Echo, orderID uuid.UUID, professionalID interface{}, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/orders/"+orderID.String()+"/accept", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orderID")
	c.SetParamValues(orderID.String())
	if professionalID != nil {
		c.Set("user_id", professionalID)
	}
	return c, rec
}

func TestAcceptOrder_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMatchingUC(ctrl)
	handler := NewMatchingHandler(mockUC)

	orderID := uuid.New()
	professionalID := uuid.New()
	selectedDate := time.Date(2026, 9, 20, 14, 0, 0, 0, time.UTC)

	e := echo.New()
	c, rec := acceptContext(e, orderID, professionalID, `{"selected_date": "2026-09-20T14:00:00Z"}`)

	mockUC.EXPECT().
		Accept(gomock.Any(), orderID, professionalID, selectedDate).
		Return(true)

	// Act
	err := handler.AcceptOrder(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Match finalized", response["message"])
}

func TestAcceptOrder_AlreadyTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMatchingUC(ctrl)
	handler := NewMatchingHandler(mockUC)

	orderID := uuid.New()
	professionalID := uuid.New()

	e := echo.New()
	c, rec := acceptContext(e, orderID, professionalID, `{"selected_date": "2026-09-20T14:00:00Z"}`)

	mockUC.EXPECT().
		Accept(gomock.Any(), orderID, professionalID, gomock.Any()).
		Return(false)

	err := handler.AcceptOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAcceptOrder_MissingDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMatchingUC(ctrl)
	handler := NewMatchingHandler(mockUC)

	e := echo.New()
	c, rec := acceptContext(e, uuid.New(), uuid.New(), `{}`)

	err := handler.AcceptOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcceptOrder_NoIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMatchingUC(ctrl)
	handler := NewMatchingHandler(mockUC)

	e := echo.New()
	c, rec := acceptContext(e, uuid.New(), nil, `{"selected_date": "2026-09-20T14:00:00Z"}`)

	err := handler.AcceptOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListMyOffers_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMatchingUC(ctrl)
	handler := NewMatchingHandler(mockUC)

	professionalID := uuid.New()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/professionals/me/offers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", professionalID)

	mockUC.EXPECT().
		ListOffers(gomock.Any(), professionalID).
		Return([]*models.Order{{ID: uuid.New(), Status: models.OrderStatusPending}}, nil)

	err := handler.ListMyOffers(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListSessions_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMatchingUC(ctrl)
	handler := NewMatchingHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/matching/sessions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		ActiveSessions().
		Return([]models.SessionInfo{{OrderID: uuid.New(), Cursor: 1, TotalCandidates: 3, NotifiedCount: 1}})

	err := handler.ListSessions(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
}

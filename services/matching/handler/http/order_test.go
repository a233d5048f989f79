package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/kurashiworks/kurashi/internal/pkg/models"
	"github.com/kurashiworks/kurashi/services/matching"
	"github.com/kurashiworks/kurashi/services/matching/mocks"
)

func TestPlaceOrder_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMatchingUC(ctrl)
	handler := NewOrderHandler(mockUC)

	e := echo.New()
	requestBody := `{
		"service_id": "cleaning-service",
		"plan_id": "deep",
		"customer_name": "Sato Hanako",
		"customer_email": "hanako@example.com",
		"customer_phone": "+818012345678",
		"address": {"prefecture": "Tokyo", "city": "Chiyoda", "street": "1-1"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	created := &models.Order{
		ID:        uuid.New(),
		ServiceID: "cleaning-service",
		PlanID:    "deep",
		Status:    models.OrderStatusPending,
	}
	mockUC.EXPECT().
		PlaceOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, order *models.Order) (*models.Order, error) {
			assert.Equal(t, "cleaning-service", order.ServiceID)
			assert.Equal(t, "deep", order.PlanID)
			assert.Equal(t, "Tokyo", order.Address.Prefecture)
			return created, nil
		})

	// Act
	err := handler.PlaceOrder(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Order placed", response["message"])
}

func TestPlaceOrder_MissingPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMatchingUC(ctrl)
	handler := NewOrderHandler(mockUC)

	e := echo.New()
	requestBody := `{"service_id": "cleaning-service", "customer_email": "a@example.com"}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.PlaceOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlaceOrder_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMatchingUC(ctrl)
	handler := NewOrderHandler(mockUC)

	e := echo.New()
	requestBody := `{
		"service_id": "cleaning-service",
		"plan_id": "deep",
		"customer_email": "not-an-email",
		"address": {"prefecture": "Tokyo", "city": "Chiyoda"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.PlaceOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPlaceOrder_UnusableAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMatchingUC(ctrl)
	handler := NewOrderHandler(mockUC)

	e := echo.New()
	requestBody := `{
		"service_id": "cleaning-service",
		"plan_id": "deep",
		"customer_email": "a@example.com",
		"address": {"prefecture": "Tokyo"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.PlaceOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMatchingUC(ctrl)
	handler := NewOrderHandler(mockUC)

	orderID := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders/"+orderID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orderID")
	c.SetParamValues(orderID.String())

	mockUC.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(&models.Order{ID: orderID, Status: models.OrderStatusPending}, nil)

	err := handler.GetOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetOrder_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMatchingUC(ctrl)
	handler := NewOrderHandler(mockUC)

	orderID := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders/"+orderID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orderID")
	c.SetParamValues(orderID.String())

	mockUC.EXPECT().
		GetOrder(gomock.Any(), orderID).
		Return(nil, matching.ErrOrderNotFound)

	err := handler.GetOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOrder_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMatchingUC(ctrl)
	handler := NewOrderHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orderID")
	c.SetParamValues("not-a-uuid")

	err := handler.GetOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelOrder_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMatchingUC(ctrl)
	handler := NewOrderHandler(mockUC)

	orderID := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders/"+orderID.String()+"/cancel", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orderID")
	c.SetParamValues(orderID.String())

	mockUC.EXPECT().
		CancelOrder(gomock.Any(), orderID).
		Return(errors.New("order cannot be cancelled in status completed"))

	err := handler.CancelOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRematchOrder_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMatchingUC(ctrl)
	handler := NewOrderHandler(mockUC)

	orderID := uuid.New()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/orders/"+orderID.String()+"/rematch", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("orderID")
	c.SetParamValues(orderID.String())

	mockUC.EXPECT().
		RematchOrder(gomock.Any(), orderID).
		Return(nil)

	err := handler.RematchOrder(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestListOrders_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockMatchingUC(ctrl)
	handler := NewOrderHandler(mockUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().
		ListOrders(gomock.Any()).
		Return([]*models.Order{{ID: uuid.New()}}, nil)

	err := handler.ListOrders(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

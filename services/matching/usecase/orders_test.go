package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/kurashiworks/kurashi/internal/pkg/constants"
	"github.com/kurashiworks/kurashi/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrder_PersistsAndStartsMatching(t *testing.T) {
	uc, m, ctrl := newTestUC(t, 420)
	defer ctrl.Finish()

	order := &models.Order{
		ServiceID:     "cleaning-service",
		PlanID:        "standard",
		CustomerName:  "Sato Hanako",
		CustomerEmail: "customer@example.com",
		Address:       models.Address{Prefecture: "Tokyo", City: "Chiyoda"},
	}

	m.orderRepo.EXPECT().
		Create(gomock.Any(), order).
		Return(nil)
	m.notifier.EXPECT().
		PublishOrderEvent(gomock.Any(), constants.SubjectOrderCreated, gomock.Any()).
		Return(nil)
	m.notifier.EXPECT().
		NotifyEmail(gomock.Any(), order.CustomerEmail, models.TemplateOrderCreated, gomock.Any()).
		Return(nil)

	// The background matching run is detached; fail its ranking so it ends
	// without touching further mocks, and signal when it has run.
	matchingStarted := make(chan struct{})
	m.professionalRepo.EXPECT().
		ListActive(gomock.Any()).
		DoAndReturn(func(context.Context) ([]*models.Professional, error) {
			close(matchingStarted)
			return nil, errors.New("directory unavailable")
		})

	created, err := uc.PlaceOrder(context.Background(), order)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, models.OrderStatusPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	select {
	case <-matchingStarted:
	case <-time.After(time.Second):
		t.Fatal("background matching run never started")
	}
}

func TestPlaceOrder_CreateFailure(t *testing.T) {
	uc, m, ctrl := newTestUC(t, 420)
	defer ctrl.Finish()

	order := cleaningOrder()
	m.orderRepo.EXPECT().
		Create(gomock.Any(), order).
		Return(errors.New("insert failed"))

	created, err := uc.PlaceOrder(context.Background(), order)

	assert.Error(t, err)
	assert.Nil(t, created)
}

func TestCancelOrder_PendingOrder(t *testing.T) {
	uc, m, ctrl := newTestUC(t, 420)
	defer ctrl.Finish()

	order := cleaningOrder()

	m.orderRepo.EXPECT().
		GetByID(gomock.Any(), order.ID).
		Return(order, nil)
	m.orderRepo.EXPECT().
		UpdateStatus(gomock.Any(), order.ID, models.OrderStatusCancelled).
		Return(nil)
	m.notifier.EXPECT().
		PublishOrderEvent(gomock.Any(), constants.SubjectOrderCancelled, gomock.Any()).
		Return(nil)
	m.notifier.EXPECT().
		NotifyEmail(gomock.Any(), order.CustomerEmail, models.TemplateOrderCancelled, gomock.Any()).
		Return(nil)

	err := uc.CancelOrder(context.Background(), order.ID)

	assert.NoError(t, err)
}

func TestCancelOrder_AlreadyCompleted(t *testing.T) {
	uc, m, ctrl := newTestUC(t, 420)
	defer ctrl.Finish()

	order := cleaningOrder()
	order.Status = models.OrderStatusCompleted

	m.orderRepo.EXPECT().
		GetByID(gomock.Any(), order.ID).
		Return(order, nil)

	err := uc.CancelOrder(context.Background(), order.ID)

	assert.Error(t, err)
}

func TestCancelOrder_TearsDownLiveSession(t *testing.T) {
	uc, m, ctrl := newTestUC(t, 420)
	defer ctrl.Finish()

	order := cleaningOrder()
	first := cleaningProfessional("Shinjuku")

	expectRanking(m, order, first)
	expectOfferNotification(m, first)
	uc.StartMatching(context.Background(), order)

	m.orderRepo.EXPECT().
		GetByID(gomock.Any(), order.ID).
		Return(order, nil)
	m.offerRepo.EXPECT().
		RemoveOffer(gomock.Any(), first.ID, order.ID).
		Return(nil)
	m.orderRepo.EXPECT().
		UpdateStatus(gomock.Any(), order.ID, models.OrderStatusCancelled).
		Return(nil)
	m.notifier.EXPECT().
		PublishOrderEvent(gomock.Any(), constants.SubjectOrderCancelled, gomock.Any()).
		Return(nil)
	m.notifier.EXPECT().
		NotifyEmail(gomock.Any(), order.CustomerEmail, models.TemplateOrderCancelled, gomock.Any()).
		Return(nil)

	err := uc.CancelOrder(context.Background(), order.ID)

	assert.NoError(t, err)
	assert.Empty(t, uc.ActiveSessions())
}

func TestRematchOrder_OnlyPending(t *testing.T) {
	uc, m, ctrl := newTestUC(t, 420)
	defer ctrl.Finish()

	order := cleaningOrder()
	order.Status = models.OrderStatusMatched

	m.orderRepo.EXPECT().
		GetByID(gomock.Any(), order.ID).
		Return(order, nil)

	err := uc.RematchOrder(context.Background(), order.ID)

	assert.Error(t, err)
}

func TestRematchOrder_StartsNewRun(t *testing.T) {
	uc, m, ctrl := newTestUC(t, 420)
	defer ctrl.Finish()

	order := cleaningOrder()

	m.orderRepo.EXPECT().
		GetByID(gomock.Any(), order.ID).
		Return(order, nil)

	matchingStarted := make(chan struct{})
	m.professionalRepo.EXPECT().
		ListActive(gomock.Any()).
		DoAndReturn(func(context.Context) ([]*models.Professional, error) {
			close(matchingStarted)
			return nil, errors.New("directory unavailable")
		})

	err := uc.RematchOrder(context.Background(), order.ID)

	require.NoError(t, err)
	select {
	case <-matchingStarted:
	case <-time.After(time.Second):
		t.Fatal("rematch never started a matching run")
	}
}

func TestListOffers_DelegatesToRepo(t *testing.T) {
	uc, m, ctrl := newTestUC(t, 420)
	defer ctrl.Finish()

	professionalID := uuid.New()
	offers := []*models.Order{cleaningOrder()}

	m.offerRepo.EXPECT().
		ListOffers(gomock.Any(), professionalID).
		Return(offers, nil)

	got, err := uc.ListOffers(context.Background(), professionalID)

	assert.NoError(t, err)
	assert.Equal(t, offers, got)
}

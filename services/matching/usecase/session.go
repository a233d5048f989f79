package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kurashiworks/kurashi/internal/pkg/constants"
	"github.com/kurashiworks/kurashi/internal/pkg/logger"
	"github.com/kurashiworks/kurashi/internal/pkg/models"
)

// matchSession is the transient, in-memory state of one order's matching run.
// All fields are guarded by MatchingUC.mu.
type matchSession struct {
	orderID    uuid.UUID
	order      *models.Order
	candidates []models.Candidate
	cursor     int
	notified   map[uuid.UUID]bool
	active     bool
	timer      *time.Timer
	createdAt  time.Time
}

// StartMatching creates a matching session for the order and notifies the
// closest candidate. Errors are logged, not returned; an order that cannot be
// ranked simply keeps its pending status for a later run.
func (uc *MatchingUC) StartMatching(ctx context.Context, order *models.Order) {
	// Any run already in flight for this order is torn down before ranking,
	// offers included, so a restart that finds no candidates leaves nothing
	// behind.
	uc.teardownSession(ctx, order.ID)

	candidates, err := uc.rankCandidates(ctx, order)
	if err != nil {
		logger.Error("Matching aborted, ranking failed",
			logger.String("order_id", order.ID.String()),
			logger.Err(err))
		return
	}

	if len(candidates) == 0 {
		logger.Info("No eligible professionals for order",
			logger.String("order_id", order.ID.String()))
		uc.publishEvent(ctx, constants.SubjectMatchingExhausted, order, nil)
		return
	}

	session := &matchSession{
		orderID:    order.ID,
		order:      order,
		candidates: candidates,
		notified:   make(map[uuid.UUID]bool),
		active:     true,
		createdAt:  time.Now(),
	}

	uc.mu.Lock()
	// Lost a race against a concurrent start for the same order; last
	// writer wins.
	if existing, ok := uc.sessions[order.ID]; ok {
		uc.deactivateLocked(existing)
	}
	uc.sessions[order.ID] = session
	uc.mu.Unlock()

	logger.Info("Matching session started",
		logger.String("order_id", order.ID.String()),
		logger.Int("candidates", len(candidates)))

	uc.notifyStep(ctx, order.ID)
}

// notifyStep notifies the candidate at the cursor, advances the cursor and
// arms the wait-window timer. It is invoked once at session start and then by
// each timer expiry until acceptance, teardown or exhaustion.
func (uc *MatchingUC) notifyStep(ctx context.Context, orderID uuid.UUID) {
	uc.mu.Lock()
	session, ok := uc.sessions[orderID]
	if !ok || !session.active {
		// Session finalized or torn down while the timer was in flight.
		uc.mu.Unlock()
		return
	}

	if session.cursor >= len(session.candidates) {
		uc.deactivateLocked(session)
		delete(uc.sessions, orderID)
		order := session.order
		uc.mu.Unlock()

		logger.Info("Matching session exhausted, no professional accepted",
			logger.String("order_id", orderID.String()),
			logger.Int("notified", len(session.notified)))
		uc.publishEvent(ctx, constants.SubjectMatchingExhausted, order, nil)
		return
	}

	candidate := session.candidates[session.cursor]
	professional := candidate.Professional
	session.notified[professional.ID] = true
	session.cursor++
	session.timer = time.AfterFunc(uc.waitWindow, func() {
		uc.notifyStep(context.Background(), orderID)
	})
	order := session.order
	uc.mu.Unlock()

	// Offer visibility and email are written outside the lock; neither is a
	// precondition for candidate progression.
	if err := uc.offerRepo.AddOffer(ctx, professional.ID, order); err != nil {
		logger.Error("Failed to add offer to professional queue",
			logger.String("order_id", orderID.String()),
			logger.String("professional_id", professional.ID.String()),
			logger.Err(err))
	}

	if err := uc.notifier.NotifyEmail(ctx, professional.Email, models.TemplateOfferReceived, map[string]interface{}{
		"order_id":     order.ID.String(),
		"service_id":   order.ServiceID,
		"plan_id":      order.PlanID,
		"distance_km":  candidate.DistanceKm,
		"area_geohash": candidate.Geohash,
		"address":      order.Address.String(),
	}); err != nil {
		logger.Warn("Offer email delivery failed",
			logger.String("professional_id", professional.ID.String()),
			logger.Err(err))
	}

	logger.Info("Professional notified",
		logger.String("order_id", orderID.String()),
		logger.String("professional_id", professional.ID.String()),
		logger.Float64("distance_km", candidate.DistanceKm))
}

// Accept arbitrates a professional's claim on an order. It returns true only
// when the claim finalized the match. Any professional notified during the
// session may claim it until the session is finalized.
func (uc *MatchingUC) Accept(ctx context.Context, orderID, professionalID uuid.UUID, selectedDate time.Time) bool {
	uc.mu.Lock()
	session, ok := uc.sessions[orderID]
	if !ok || !session.active || !session.notified[professionalID] {
		uc.mu.Unlock()
		logger.Warn("Rejected acceptance claim",
			logger.String("order_id", orderID.String()),
			logger.String("professional_id", professionalID.String()))
		return false
	}
	order := session.order
	prevUpdatedAt := order.UpdatedAt
	uc.mu.Unlock()

	// Persist the match first. The compare-and-swap on updated_at makes sure
	// only one claim can win even if two arrive back to back.
	if err := uc.orderRepo.UpdateMatched(ctx, orderID, professionalID, selectedDate, prevUpdatedAt); err != nil {
		logger.Error("Failed to finalize order match",
			logger.String("order_id", orderID.String()),
			logger.String("professional_id", professionalID.String()),
			logger.Err(err))
		return false
	}

	uc.mu.Lock()
	session, ok = uc.sessions[orderID]
	if !ok || !session.active {
		uc.mu.Unlock()
		return false
	}
	uc.deactivateLocked(session)
	delete(uc.sessions, orderID)
	notified := make([]uuid.UUID, 0, len(session.notified))
	for id := range session.notified {
		notified = append(notified, id)
	}
	uc.mu.Unlock()

	// Invalidate every outstanding offer, the winner's included.
	for _, id := range notified {
		if err := uc.offerRepo.RemoveOffer(ctx, id, orderID); err != nil {
			logger.Error("Failed to remove offer",
				logger.String("order_id", orderID.String()),
				logger.String("professional_id", id.String()),
				logger.Err(err))
		}
	}

	order.Status = models.OrderStatusMatched
	order.ProfessionalID = &professionalID
	order.ScheduledDate = &selectedDate

	uc.notifyMatchFinalized(ctx, order, professionalID)
	uc.publishEvent(ctx, constants.SubjectOrderMatched, order, &professionalID)

	logger.Info("Order matched",
		logger.String("order_id", orderID.String()),
		logger.String("professional_id", professionalID.String()))

	return true
}

// StopMatching tears down the order's session, if any. Order status is left
// untouched; callers own that transition.
func (uc *MatchingUC) StopMatching(ctx context.Context, orderID uuid.UUID) {
	if !uc.teardownSession(ctx, orderID) {
		return
	}

	logger.Info("Matching session stopped",
		logger.String("order_id", orderID.String()))
}

// teardownSession drops the order's session and invalidates every offer it
// issued. It reports whether a session existed.
func (uc *MatchingUC) teardownSession(ctx context.Context, orderID uuid.UUID) bool {
	uc.mu.Lock()
	session, ok := uc.sessions[orderID]
	if !ok {
		uc.mu.Unlock()
		return false
	}
	uc.deactivateLocked(session)
	delete(uc.sessions, orderID)
	notified := make([]uuid.UUID, 0, len(session.notified))
	for id := range session.notified {
		notified = append(notified, id)
	}
	uc.mu.Unlock()

	for _, id := range notified {
		if err := uc.offerRepo.RemoveOffer(ctx, id, orderID); err != nil {
			logger.Error("Failed to remove offer",
				logger.String("order_id", orderID.String()),
				logger.String("professional_id", id.String()),
				logger.Err(err))
		}
	}

	return true
}

// ActiveSessions returns the observable state of every live session
func (uc *MatchingUC) ActiveSessions() []models.SessionInfo {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	infos := make([]models.SessionInfo, 0, len(uc.sessions))
	for _, s := range uc.sessions {
		infos = append(infos, models.SessionInfo{
			OrderID:         s.orderID,
			Cursor:          s.cursor,
			TotalCandidates: len(s.candidates),
			NotifiedCount:   len(s.notified),
			CreatedAt:       s.createdAt,
		})
	}
	return infos
}

// ShutdownSessions stops every session timer during process shutdown.
// Orders stay pending and offers stay in place so a restart can rematch them.
func (uc *MatchingUC) ShutdownSessions() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for orderID, session := range uc.sessions {
		uc.deactivateLocked(session)
		delete(uc.sessions, orderID)
	}
}

// deactivateLocked stops the session's timer and flags it inactive so an
// already-fired callback becomes a no-op. Callers hold uc.mu.
func (uc *MatchingUC) deactivateLocked(session *matchSession) {
	session.active = false
	if session.timer != nil {
		session.timer.Stop()
		session.timer = nil
	}
}

// notifyMatchFinalized emails both sides of a finalized match
func (uc *MatchingUC) notifyMatchFinalized(ctx context.Context, order *models.Order, professionalID uuid.UUID) {
	payload := map[string]interface{}{
		"order_id":       order.ID.String(),
		"service_id":     order.ServiceID,
		"plan_id":        order.PlanID,
		"scheduled_date": order.ScheduledDate,
	}

	if err := uc.notifier.NotifyEmail(ctx, order.CustomerEmail, models.TemplateMatchCustomer, payload); err != nil {
		logger.Warn("Customer match email delivery failed",
			logger.String("order_id", order.ID.String()),
			logger.Err(err))
	}

	professional, err := uc.professionalRepo.GetByID(ctx, professionalID)
	if err != nil {
		logger.Warn("Failed to load professional for match email",
			logger.String("professional_id", professionalID.String()),
			logger.Err(err))
		return
	}
	if err := uc.notifier.NotifyEmail(ctx, professional.Email, models.TemplateMatchProfessional, payload); err != nil {
		logger.Warn("Professional match email delivery failed",
			logger.String("professional_id", professionalID.String()),
			logger.Err(err))
	}
}

// publishEvent emits an order lifecycle event, logging delivery failures
func (uc *MatchingUC) publishEvent(ctx context.Context, subject string, order *models.Order, professionalID *uuid.UUID) {
	event := models.OrderEvent{
		OrderID:        order.ID,
		Status:         order.Status,
		ProfessionalID: professionalID,
		OccurredAt:     time.Now(),
	}
	if err := uc.notifier.PublishOrderEvent(ctx, subject, event); err != nil {
		logger.Warn("Failed to publish order event",
			logger.String("subject", subject),
			logger.String("order_id", order.ID.String()),
			logger.Err(err))
	}
}

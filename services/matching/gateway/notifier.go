package gateway

import (
	"context"
	"time"

	"github.com/kurashiworks/kurashi/internal/pkg/constants"
	"github.com/kurashiworks/kurashi/internal/pkg/models"
	"github.com/kurashiworks/kurashi/services/matching"

	natspkg "github.com/kurashiworks/kurashi/internal/pkg/nats"
	nsqpkg "github.com/kurashiworks/kurashi/internal/pkg/nsq"
)

// notifierGW publishes mail jobs to NSQ for the notification worker and
// order lifecycle events to NATS for admin-facing consumers
type notifierGW struct {
	nsqProducer *nsqpkg.Producer
	natsClient  *natspkg.Client
}

// NewNotifierGW creates a new notifier gateway
func NewNotifierGW(nsqProducer *nsqpkg.Producer, natsClient *natspkg.Client) matching.NotifierGW {
	return &notifierGW{
		nsqProducer: nsqProducer,
		natsClient:  natsClient,
	}
}

// NotifyEmail enqueues an email job for asynchronous delivery
func (g *notifierGW) NotifyEmail(ctx context.Context, recipient string, template models.EmailTemplate, payload map[string]interface{}) error {
	job := models.EmailJob{
		Recipient: recipient,
		Template:  template,
		Payload:   payload,
		CreatedAt: time.Now(),
	}

	return g.nsqProducer.Publish(constants.TopicEmailJobs, job)
}

// PublishOrderEvent publishes an order lifecycle event
func (g *notifierGW) PublishOrderEvent(ctx context.Context, subject string, event models.OrderEvent) error {
	return g.natsClient.PublishJSON(subject, event)
}

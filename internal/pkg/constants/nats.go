package constants

// NATS Subjects
const (
	// Order lifecycle
	SubjectOrderCreated   = "order.created"
	SubjectOrderMatched   = "order.matched"
	SubjectOrderCancelled = "order.cancelled"

	// Matching engine
	SubjectMatchingExhausted = "matching.exhausted"
)

// NSQ topics
const (
	TopicEmailJobs = "notification.email"
)

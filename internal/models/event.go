package models

// Event types published to the event stream.
const (
	EventUserRegistered = "user.registered"
	EventUserDeleted    = "user.deleted"
	EventBlogCreated    = "blog.created"
	EventBlogUpdated    = "blog.updated"
	EventBlogDeleted    = "blog.deleted"
)

// Event is a domain event published to Kafka.
type Event struct {
	EventID   string `json:"event_id"`           // Unique event identifier
	Type      string `json:"type"`               // One of the Event* constants
	Timestamp int64  `json:"timestamp"`          // Unix timestamp of the event
	SubjectID string `json:"subject_id"`         // Identifier of the affected entity
	ActorID   string `json:"actor_id,omitempty"` // Identifier of the acting user, when known
}

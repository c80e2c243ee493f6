package models

// Event types published to the marketplace topic.
const (
	EventUserRegistered = "user_registered"
	EventArtworkListed  = "artwork_listed"
)

// Event represents a domain event published to Kafka.
type Event struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Type      string `json:"type"`      // Type is the event name, e.g. "user_registered".
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	UserID    int64  `json:"user_id"`    // UserID is the user the event relates to.
	SubjectID int64  `json:"subject_id"` // SubjectID is the id of the created record, when applicable.
}

package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventRosterLoaded     EventType = "roster_loaded"
	EventRosterLoadFailed EventType = "roster_load_failed"
	EventPopupHidden      EventType = "popup_hidden"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// RosterLoadedPayload payload.
type RosterLoadedPayload struct {
	Source        string `json:"source"`
	Organizations int    `json:"organizations"`
	People        int    `json:"people"`
}

// RosterLoadFailedPayload payload.
type RosterLoadFailedPayload struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

// PopupHiddenPayload payload.
type PopupHiddenPayload struct {
	VisitorID string `json:"visitor_id"`
	PopupID   string `json:"popup_id"`
	Date      string `json:"date"`
}

package domain

import "time"

// RosterState enumerates roster load states.
type RosterState string

const (
	RosterStateLoading RosterState = "loading"
	RosterStateReady   RosterState = "ready"
	RosterStateFailed  RosterState = "failed"
)

// RosterStatus describes the outcome of the latest roster load.
type RosterStatus struct {
	State    RosterState
	Message  string
	Source   string
	LoadedAt *time.Time
}

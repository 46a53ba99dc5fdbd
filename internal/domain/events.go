package domain

import "time"

// EventType represents the type of game event
type EventType string

const (
	EventState        EventType = "state"         // Full view after an applied action
	EventStageChanged EventType = "stage_changed" // Stage transition
	EventRoundScored  EventType = "round_scored"  // Scoring applied
)

// GameEvent represents an event that occurred in the game
type GameEvent struct {
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a new game event
func NewEvent(eventType EventType, payload interface{}) *GameEvent {
	return &GameEvent{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// StageChangedPayload is sent when the stage changes
type StageChangedPayload struct {
	From  Stage `json:"from"`
	To    Stage `json:"to"`
	Round int   `json:"round"`
}

// RoundScoredPayload is sent once per round when scoring is applied
type RoundScoredPayload struct {
	Outcome Outcome  `json:"outcome"`
	Message string   `json:"message"`
	FakeID  string   `json:"fakeId"`
	Players []Player `json:"players"`
}

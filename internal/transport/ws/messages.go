package ws

import (
	"encoding/json"
	"time"

	"fakeartist/internal/domain"
)

// MessageType represents the type of WebSocket message
type MessageType string

// Client → Server message types
const (
	// lobby
	MsgSetPlayerCount     MessageType = "set_player_count"
	MsgSetPlayerName      MessageType = "set_player_name"
	MsgSetPlayerColor     MessageType = "set_player_color"
	MsgSelectModerator    MessageType = "select_moderator"
	MsgRandomizeModerator MessageType = "randomize_moderator"
	MsgStartRound         MessageType = "start_round"

	// moderator
	MsgSelectTheme   MessageType = "select_theme"
	MsgSelectWord    MessageType = "select_word"
	MsgRandomWord    MessageType = "random_word"
	MsgBackToLobby   MessageType = "back_to_lobby"
	MsgGenerateCards MessageType = "generate_cards"

	// cards
	MsgRevealCard   MessageType = "reveal_card"
	MsgHideCard     MessageType = "hide_card"
	MsgNextCard     MessageType = "next_card"
	MsgBeginDrawing MessageType = "begin_drawing"

	// drawing
	MsgPointerDown MessageType = "pointer_down"
	MsgPointerMove MessageType = "pointer_move"
	MsgPointerUp   MessageType = "pointer_up"
	MsgUndo        MessageType = "undo"
	MsgClear       MessageType = "clear"
	MsgGoToVoting  MessageType = "go_to_voting"

	// voting
	MsgToggleVoteMode   MessageType = "toggle_vote_mode"
	MsgSetVoteMode      MessageType = "set_vote_mode"
	MsgCastPublicVote   MessageType = "cast_public_vote"
	MsgCastPrivateVote  MessageType = "cast_private_vote"
	MsgRevealVotes      MessageType = "reveal_votes"
	MsgPickAccused      MessageType = "pick_accused"
	MsgBackToDrawing    MessageType = "back_to_drawing"
	MsgResolveToResults MessageType = "resolve_to_results"

	// results
	MsgSubmitGuess      MessageType = "submit_guess"
	MsgApplyMissScoring MessageType = "apply_miss_scoring"
	MsgNextRound        MessageType = "next_round"
	MsgChangeModerator  MessageType = "change_moderator"
	MsgResetGame        MessageType = "reset_game"

	MsgPing MessageType = "ping"
)

// Server → Client message types. Game events (state, stage_changed,
// round_scored) use the same envelope.
const (
	MsgConnected MessageType = "connected"
	MsgError     MessageType = "error"
	MsgPong      MessageType = "pong"
)

// ClientMessage represents a message from client to server
type ClientMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ServerMessage represents a message from server to client
type ServerMessage struct {
	Type      MessageType `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewServerMessage creates a new server message with current timestamp
func NewServerMessage(msgType MessageType, payload interface{}) *ServerMessage {
	return &ServerMessage{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Client message payloads

// PlayerCountPayload is the payload for set_player_count
type PlayerCountPayload struct {
	Count int `json:"count"`
}

// PlayerFieldPayload is the payload for set_player_name and set_player_color
type PlayerFieldPayload struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name,omitempty"`
	Color    string `json:"color,omitempty"`
}

// PlayerPayload names a single player (select_moderator, pick_accused)
type PlayerPayload struct {
	PlayerID string `json:"playerId"`
}

// ThemePayload is the payload for select_theme
type ThemePayload struct {
	Theme string `json:"theme"`
}

// WordPayload is the payload for select_word
type WordPayload struct {
	Word string `json:"word"`
}

// PointPayload is a canvas-space point for pointer messages
type PointPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ClearPayload is the payload for clear; the presentation layer asks the
// moderator first
type ClearPayload struct {
	Confirmed bool `json:"confirmed"`
}

// VoteModePayload is the payload for set_vote_mode
type VoteModePayload struct {
	Mode domain.VoteMode `json:"mode"`
}

// VotePayload is the payload for cast_public_vote and cast_private_vote
type VotePayload struct {
	VoterID  string `json:"voterId,omitempty"`
	TargetID string `json:"targetId"`
}

// GuessPayload is the payload for submit_guess
type GuessPayload struct {
	Guess string `json:"guess"`
}

// Server message payloads

// ConnectedPayload is the payload for connected message
type ConnectedPayload struct {
	ClientID string      `json:"clientId"`
	State    domain.View `json:"state"`
}

// ErrorPayload is the payload for error message
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes. Game actions that do not apply are never reported; these
// only cover messages that cannot be understood.
const (
	ErrCodeInvalidMessage = "INVALID_MESSAGE"
	ErrCodeUnknownType    = "UNKNOWN_TYPE"
	ErrCodeRateLimited    = "RATE_LIMITED"
)

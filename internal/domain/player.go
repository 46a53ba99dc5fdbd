package domain

import (
	"strconv"

	"github.com/google/uuid"
)

const (
	MinPlayers = 5
	MaxPlayers = 10
)

// Palette holds the default colors, assigned by roster position
var Palette = []string{
	"#ef476f", "#ff9f1c", "#ffd166", "#06d6a0", "#118ab2",
	"#9b5de5", "#f15bb5", "#00bbf9", "#00f5d4", "#f4a261",
}

// IDSource produces stable unique player identities
type IDSource func() string

// UUIDSource is the default IDSource
func UUIDSource() string {
	return uuid.NewString()
}

// Player represents a seat at the shared device
type Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Score int    `json:"score"`
}

// NewPlayer creates the default player for roster position index
func NewPlayer(id string, index int) *Player {
	return &Player{
		ID:    id,
		Name:  DefaultName(index),
		Color: Palette[index%len(Palette)],
	}
}

// DefaultName returns the placeholder name for roster position index
func DefaultName(index int) string {
	return "Player " + strconv.Itoa(index+1)
}

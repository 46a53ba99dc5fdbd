package domain

// Stage represents the current stage of a round
type Stage string

const (
	StageLobby     Stage = "lobby"     // Editing players and picking the moderator
	StageModerator Stage = "moderator" // Moderator chooses theme and word
	StageCards     Stage = "cards"     // Device passed around to reveal cards
	StageDrawing   Stage = "drawing"   // Two strokes per player, in roster order
	StageVoting    Stage = "voting"    // Accusations and tie-break
	StageResults   Stage = "results"   // Fake guess and scoring
)

// String returns the string representation of the stage
func (s Stage) String() string {
	return string(s)
}

var validTransitions = map[Stage][]Stage{
	StageLobby:     {StageModerator},
	StageModerator: {StageLobby, StageCards},
	StageCards:     {StageDrawing},
	StageDrawing:   {StageDrawing, StageVoting},
	StageVoting:    {StageDrawing, StageResults},
	StageResults:   {StageModerator, StageLobby}, // Next round or back to lobby
}

// CanTransitionTo checks if a transition from current stage to target stage is valid
func (s Stage) CanTransitionTo(target Stage) bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return false
	}

	for _, stage := range allowed {
		if stage == target {
			return true
		}
	}
	return false
}

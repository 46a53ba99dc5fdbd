package domain

// StrokesPerPlayer is how many lines each player draws per round
const StrokesPerPlayer = 2

// StrokeBudget returns the total strokes of a round for a roster size
func StrokeBudget(rosterSize int) int {
	return StrokesPerPlayer * rosterSize
}

// TurnIndex returns the roster position whose turn it is, -1 for an
// empty roster
func TurnIndex(turn, rosterSize int) int {
	if rosterSize <= 0 {
		return -1
	}
	return turn % rosterSize
}

// LineNumber returns which of their lines the current player is drawing
func LineNumber(turn, rosterSize int) int {
	if rosterSize <= 0 {
		return 1
	}
	return min(StrokesPerPlayer, turn/rosterSize+1)
}

package domain

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// CloseGuessDistance is the edit distance under which a wrong guess is
// reported as close
const CloseGuessDistance = 2

// Outcome is how a round ended
type Outcome string

const (
	OutcomeFakeGuessed Outcome = "FAKE_GUESSED" // Fake caught but named the word
	OutcomeFakeCaught  Outcome = "FAKE_CAUGHT"  // Fake caught and missed the word
	OutcomeGroupMissed Outcome = "GROUP_MISSED" // Accused player was an artist
)

// DecideOutcome maps accusation and guess correctness to an outcome.
// guessCorrect only matters when the Fake was accused.
func DecideOutcome(accusedIsFake, guessCorrect bool) Outcome {
	switch {
	case !accusedIsFake:
		return OutcomeGroupMissed
	case guessCorrect:
		return OutcomeFakeGuessed
	default:
		return OutcomeFakeCaught
	}
}

// Message returns the announcement shown once the round is scored
func (o Outcome) Message() string {
	switch o {
	case OutcomeFakeGuessed:
		return "Fake guessed correctly: +2 to Fake & Moderator"
	case OutcomeFakeCaught:
		return "Artists caught the Fake: +1 to everyone else"
	case OutcomeGroupMissed:
		return "Group missed: +2 to Fake & Moderator"
	default:
		return ""
	}
}

// ScoreDeltas computes every player's score change for an outcome. The
// Fake and the moderator bonuses add up when one player holds both roles.
func ScoreDeltas(outcome Outcome, players []Player, fakeID, moderatorID string) map[string]int {
	deltas := make(map[string]int, len(players))
	for _, p := range players {
		delta := 0
		switch outcome {
		case OutcomeFakeGuessed, OutcomeGroupMissed:
			if p.ID == fakeID {
				delta += 2
			}
			if p.ID == moderatorID {
				delta += 2
			}
		case OutcomeFakeCaught:
			if p.ID != fakeID {
				delta++
			}
		}
		deltas[p.ID] = delta
	}
	return deltas
}

func normalizeGuess(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// GuessMatches compares a guess to the secret word, ignoring case and
// surrounding whitespace
func GuessMatches(guess, word string) bool {
	return normalizeGuess(guess) == normalizeGuess(word)
}

// GuessDistance returns the edit distance between a normalized guess and word
func GuessDistance(guess, word string) int {
	return levenshtein.ComputeDistance(normalizeGuess(guess), normalizeGuess(word))
}

// IsCloseGuess reports a wrong guess within CloseGuessDistance edits
func IsCloseGuess(guess, word string) bool {
	if GuessMatches(guess, word) {
		return false
	}
	return GuessDistance(guess, word) <= CloseGuessDistance
}

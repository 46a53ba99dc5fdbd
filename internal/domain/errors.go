package domain

import "errors"

// Domain errors. Every operation that returns one of these left the game
// untouched; callers treat them as ignored actions.
var (
	ErrWrongStage        = errors.New("invalid action for current stage")
	ErrInvalidTransition = errors.New("invalid stage transition")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrUnknownTheme      = errors.New("unknown theme")
	ErrUnknownWord       = errors.New("word is not part of the theme")
	ErrEmptyWord         = errors.New("word cannot be empty")
	ErrCardHidden        = errors.New("card must be revealed first")
	ErrCardsPending      = errors.New("not every card has been seen")
	ErrCardsDone         = errors.New("every card has been seen")
	ErrNotDrawing        = errors.New("no stroke in progress")
	ErrAlreadyDrawing    = errors.New("stroke already in progress")
	ErrBudgetReached     = errors.New("stroke budget reached")
	ErrBudgetPending     = errors.New("strokes remaining")
	ErrUndoUsed          = errors.New("undo already used this round")
	ErrNothingToUndo     = errors.New("no stroke to undo")
	ErrNotConfirmed      = errors.New("clear requires confirmation")
	ErrWrongVoteMode     = errors.New("action not available in this vote mode")
	ErrVotersExhausted   = errors.New("every player has voted")
	ErrVotesIncomplete   = errors.New("votes are not complete")
	ErrVotesRevealed     = errors.New("votes already revealed")
	ErrNoTie             = errors.New("no tie to break")
	ErrNotTied           = errors.New("player is not a tie candidate")
	ErrNoAccused         = errors.New("no accused player yet")
	ErrAlreadyScored     = errors.New("round already scored")
	ErrBlankGuess        = errors.New("guess cannot be empty")
	ErrNoGuess           = errors.New("fake was not caught, no guess to make")
	ErrFakeCaught        = errors.New("fake was caught, scoring waits for the guess")
)

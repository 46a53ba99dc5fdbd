package domain

// deal is the secret assignment of a round and how far the device has
// travelled around the table revealing cards
type deal struct {
	assignment  Assignment
	revealIndex int
	revealed    bool
}

// done reports whether every player has seen their card
func (d *deal) done(rosterSize int) bool {
	return d.revealIndex >= rosterSize
}

// round is the transient play state of a round: canvas, turn counter,
// votes and the scoring result. It is thrown away and recreated at every
// round boundary; nothing in it outlives the round.
type round struct {
	canvas     Canvas
	turn       int
	ballot     *Ballot
	guess      string
	closeGuess bool
	scored     bool
	outcome    Outcome
}

func newRound() *round {
	return &round{ballot: NewBallot()}
}

// resetVotes discards every vote, the voter pointer and the reveal
func (r *round) resetVotes() {
	r.ballot = NewBallot()
}

package domain

// VoteMode selects how accusations are collected
type VoteMode string

const (
	VoteModePublic  VoteMode = "public"  // Everyone's pick is set directly and may change
	VoteModePrivate VoteMode = "private" // One voter at a time, in roster order
)

// Toggle returns the other vote mode
func (m VoteMode) Toggle() VoteMode {
	if m == VoteModePrivate {
		return VoteModePublic
	}
	return VoteModePrivate
}

// Valid checks if m is a known vote mode
func (m VoteMode) Valid() bool {
	return m == VoteModePublic || m == VoteModePrivate
}

// VoteResult is the outcome of tallying a complete vote set
type VoteResult struct {
	Counts  map[string]int `json:"counts"`
	Leaders []string       `json:"leaders"` // roster order
}

// Resolved returns the single leader, or false on a tie
func (r VoteResult) Resolved() (string, bool) {
	if len(r.Leaders) != 1 {
		return "", false
	}
	return r.Leaders[0], true
}

// Tally counts votes per player. Every player appears with at least 0.
func Tally(votes map[string]string, players []Player) map[string]int {
	counts := make(map[string]int, len(players))
	for _, p := range players {
		counts[p.ID] = 0
	}
	for _, target := range votes {
		if target == "" {
			continue
		}
		counts[target]++
	}
	return counts
}

// CountVotes tallies votes and collects every player at the maximum.
// With no votes at all everyone ties at 0.
func CountVotes(votes map[string]string, players []Player) VoteResult {
	counts := Tally(votes, players)

	maxVotes := 0
	for _, p := range players {
		if counts[p.ID] > maxVotes {
			maxVotes = counts[p.ID]
		}
	}

	leaders := make([]string, 0, 1)
	for _, p := range players {
		if counts[p.ID] == maxVotes {
			leaders = append(leaders, p.ID)
		}
	}

	return VoteResult{Counts: counts, Leaders: leaders}
}

// Ballot is the vote state of one voting stage
type Ballot struct {
	votes      map[string]string
	voterIndex int
	revealed   bool
	tie        []string
	accused    string
}

// NewBallot creates an empty ballot
func NewBallot() *Ballot {
	return &Ballot{votes: make(map[string]string)}
}

// Cast records voterID's accusation; the last one wins
func (b *Ballot) Cast(voterID, targetID string) {
	b.votes[voterID] = targetID
}

// CastNext records the accusation of the current private voter and moves
// the pointer to the next player in roster order
func (b *Ballot) CastNext(players []Player, targetID string) (string, error) {
	if b.voterIndex >= len(players) {
		return "", ErrVotersExhausted
	}
	voter := players[b.voterIndex].ID
	b.votes[voter] = targetID
	b.voterIndex++
	return voter, nil
}

// Votes returns a copy of the vote set
func (b *Ballot) Votes() map[string]string {
	out := make(map[string]string, len(b.votes))
	for k, v := range b.votes {
		out[k] = v
	}
	return out
}

// VoterIndex returns the roster position of the next private voter
func (b *Ballot) VoterIndex() int {
	return b.voterIndex
}

// Complete holds when every current player has exactly one non-empty vote
func (b *Ballot) Complete(players []Player) bool {
	if len(players) == 0 || len(b.votes) != len(players) {
		return false
	}
	for _, p := range players {
		if b.votes[p.ID] == "" {
			return false
		}
	}
	return true
}

// Reveal tallies the votes and either settles on the accused or records
// the tie for the moderator to break
func (b *Ballot) Reveal(players []Player) VoteResult {
	result := CountVotes(b.votes, players)
	b.revealed = true
	if accused, ok := result.Resolved(); ok {
		b.accused = accused
		b.tie = nil
	} else {
		b.accused = ""
		b.tie = result.Leaders
	}
	return result
}

// Revealed reports whether votes have been revealed
func (b *Ballot) Revealed() bool {
	return b.revealed
}

// Tie returns the tied candidates, empty when there is no tie
func (b *Ballot) Tie() []string {
	out := make([]string, len(b.tie))
	copy(out, b.tie)
	return out
}

// Accused returns the accused player's ID, empty if not settled
func (b *Ballot) Accused() string {
	return b.accused
}

// BreakTie sets the accused to one of the tied candidates
func (b *Ballot) BreakTie(playerID string) error {
	if !b.revealed || len(b.tie) < 2 {
		return ErrNoTie
	}
	for _, id := range b.tie {
		if id == playerID {
			b.accused = playerID
			return nil
		}
	}
	return ErrNotTied
}

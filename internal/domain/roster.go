package domain

// Roster is the ordered list of players plus the moderator reference.
// Its size always stays within [MinPlayers, MaxPlayers].
type Roster struct {
	players     []*Player
	moderatorID string
	newID       IDSource
}

// NewRoster creates a roster of MinPlayers default players; the first
// player moderates.
func NewRoster(newID IDSource) *Roster {
	if newID == nil {
		newID = UUIDSource
	}
	r := &Roster{newID: newID}
	r.Resize(MinPlayers)
	return r
}

// Len returns the number of players
func (r *Roster) Len() int {
	return len(r.players)
}

// At returns the player at position i
func (r *Roster) At(i int) *Player {
	if i < 0 || i >= len(r.players) {
		return nil
	}
	return r.players[i]
}

// Get returns a player by ID
func (r *Roster) Get(id string) (*Player, bool) {
	for _, p := range r.players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Contains checks if id belongs to a current player
func (r *Roster) Contains(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// Players returns a snapshot of the roster in order
func (r *Roster) Players() []Player {
	out := make([]Player, len(r.players))
	for i, p := range r.players {
		out[i] = *p
	}
	return out
}

// IDs returns player IDs in roster order
func (r *Roster) IDs() []string {
	ids := make([]string, len(r.players))
	for i, p := range r.players {
		ids[i] = p.ID
	}
	return ids
}

// Resize grows or shrinks the roster to n, clamped to the allowed range.
// Growing appends default players; shrinking drops from the end. Returns
// the resulting size.
func (r *Roster) Resize(n int) int {
	n = clamp(n, MinPlayers, MaxPlayers)
	for len(r.players) < n {
		r.players = append(r.players, NewPlayer(r.newID(), len(r.players)))
	}
	if len(r.players) > n {
		for i := n; i < len(r.players); i++ {
			r.players[i] = nil
		}
		r.players = r.players[:n]
	}
	r.repairModerator()
	return n
}

// Rename sets a player's display name
func (r *Roster) Rename(id, name string) error {
	p, ok := r.Get(id)
	if !ok {
		return ErrPlayerNotFound
	}
	p.Name = name
	return nil
}

// Recolor sets a player's stroke color
func (r *Roster) Recolor(id, color string) error {
	p, ok := r.Get(id)
	if !ok {
		return ErrPlayerNotFound
	}
	p.Color = color
	return nil
}

// Moderator returns the moderator's ID
func (r *Roster) Moderator() string {
	return r.moderatorID
}

// SetModerator picks the moderator
func (r *Roster) SetModerator(id string) error {
	if !r.Contains(id) {
		return ErrPlayerNotFound
	}
	r.moderatorID = id
	return nil
}

// RandomizeModerator picks the moderator uniformly at random
func (r *Roster) RandomizeModerator(rng Rand) string {
	r.moderatorID = r.players[rng.IntN(len(r.players))].ID
	return r.moderatorID
}

// AddScores applies score deltas keyed by player ID
func (r *Roster) AddScores(deltas map[string]int) {
	for _, p := range r.players {
		p.Score += deltas[p.ID]
	}
}

// ResetScores zeroes every score and restores blank names to their default
func (r *Roster) ResetScores() {
	for i, p := range r.players {
		p.Score = 0
		if p.Name == "" {
			p.Name = DefaultName(i)
		}
	}
}

// repairModerator points the moderator at the first player when the
// referenced player is gone
func (r *Roster) repairModerator() {
	if len(r.players) == 0 {
		return
	}
	if !r.Contains(r.moderatorID) {
		r.moderatorID = r.players[0].ID
	}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

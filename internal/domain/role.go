package domain

// Role represents a player's role in a round
type Role string

const (
	RoleFake   Role = "FAKE"
	RoleArtist Role = "ARTIST"
)

// FakeCard is the card content handed to the Fake instead of the word
const FakeCard = "FAKE"

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// IsFake returns true if this role is the Fake
func (r Role) IsFake() bool {
	return r == RoleFake
}

// Assignment is the per-round secret deal: exactly one Fake, and every
// other player's card holds the same secret word.
type Assignment struct {
	FakeID string            `json:"fakeId"`
	Cards  map[string]string `json:"cards"`
}

// AssignRoles picks the Fake uniformly from players and builds the cards
func AssignRoles(players []Player, word string, rng Rand) Assignment {
	fake := players[rng.IntN(len(players))]

	cards := make(map[string]string, len(players))
	for _, p := range players {
		if p.ID == fake.ID {
			cards[p.ID] = FakeCard
		} else {
			cards[p.ID] = word
		}
	}

	return Assignment{FakeID: fake.ID, Cards: cards}
}

// RoleOf returns the role of a player in this assignment
func (a Assignment) RoleOf(playerID string) Role {
	if playerID == a.FakeID {
		return RoleFake
	}
	return RoleArtist
}

// Card returns what a player's card shows
func (a Assignment) Card(playerID string) string {
	return a.Cards[playerID]
}

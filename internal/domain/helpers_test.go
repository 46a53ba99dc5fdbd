package domain

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"fakeartist/internal/words"
)

// seqRand replays a fixed sequence of picks, wrapping around
type seqRand struct {
	picks []int
	calls int
}

func (r *seqRand) IntN(n int) int {
	if len(r.picks) == 0 {
		return 0
	}
	v := r.picks[r.calls%len(r.picks)]
	r.calls++
	return v % n
}

func seqIDs() IDSource {
	n := 0
	return func() string {
		n++
		return "p-" + strconv.Itoa(n)
	}
}

func newTestGame(t *testing.T, picks ...int) *Game {
	t.Helper()
	g, err := NewGame(words.Default(), &seqRand{picks: picks}, seqIDs())
	require.NoError(t, err)
	return g
}

// toCards walks a fresh game to the card reveal with theme/word selected
func toCards(t *testing.T, g *Game, theme, word string) {
	t.Helper()
	require.NoError(t, g.StartRound())
	require.NoError(t, g.SelectTheme(theme))
	require.NoError(t, g.SelectWord(word))
	require.NoError(t, g.GenerateCards())
}

func revealAll(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < g.roster.Len(); i++ {
		require.NoError(t, g.RevealCard())
		require.NoError(t, g.NextCard())
	}
}

func toDrawing(t *testing.T, g *Game, theme, word string) {
	t.Helper()
	toCards(t, g, theme, word)
	revealAll(t, g)
	require.NoError(t, g.BeginDrawing())
}

func drawStroke(t *testing.T, g *Game) {
	t.Helper()
	require.NoError(t, g.PointerDown(Point{X: 1, Y: 1}))
	require.NoError(t, g.PointerMove(Point{X: 2, Y: 2}))
	require.NoError(t, g.PointerMove(Point{X: 3, Y: 5}))
	require.NoError(t, g.PointerUp())
}

func toVoting(t *testing.T, g *Game, theme, word string) {
	t.Helper()
	toDrawing(t, g, theme, word)
	for i := 0; i < g.Budget(); i++ {
		drawStroke(t, g)
	}
	require.Equal(t, StageVoting, g.Stage())
}

func playerID(g *Game, i int) string {
	return g.roster.At(i).ID
}

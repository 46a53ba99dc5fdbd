package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_Lobby(t *testing.T) {
	g := newTestGame(t)

	v := g.View()

	assert.Equal(t, StageLobby, v.Stage)
	assert.Equal(t, 1, v.Round)
	assert.Equal(t, []string{"Octopus", "Elephant", "Kangaroo", "Penguin", "Tiger", "Dolphin", "Giraffe", "Camel"}, v.ThemeWords)
	assert.Nil(t, v.Cards)
	assert.Nil(t, v.Drawing)
	assert.Nil(t, v.Voting)
	assert.Nil(t, v.Results)
}

func TestView_Drawing(t *testing.T) {
	g := newTestGame(t, 1)
	toDrawing(t, g, "Animal", "Tiger")
	drawStroke(t, g)
	require.NoError(t, g.PointerDown(Point{X: 7, Y: 8}))

	want := &DrawingView{
		Turn:            1,
		Budget:          10,
		Remaining:       9,
		CurrentPlayerID: "p-2",
		LineNumber:      1,
		Strokes: []Stroke{{
			ID:       "p-1-0",
			PlayerID: "p-1",
			Color:    Palette[0],
			Points:   []Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 5}},
		}},
		InProgress: []Point{{X: 7, Y: 8}},
	}

	if diff := cmp.Diff(want, g.View().Drawing); diff != "" {
		t.Errorf("drawing view mismatch (-want +got):\n%s", diff)
	}
}

func TestView_ResultsAfterScoring(t *testing.T) {
	g := newTestGame(t, 2)
	playToResults(t, g)
	require.NoError(t, g.ApplyMissScoring())

	v := g.View()
	require.NotNil(t, v.Results)
	require.NotNil(t, v.Voting)
	require.NotNil(t, v.Drawing)

	want := &ResultsView{
		FakeID:    "p-3",
		AccusedID: "p-1",
		Word:      "Octopus",
		Scored:    true,
		Outcome:   OutcomeGroupMissed,
		Message:   "Group missed: +2 to Fake & Moderator",
	}
	if diff := cmp.Diff(want, v.Results); diff != "" {
		t.Errorf("results view mismatch (-want +got):\n%s", diff)
	}

	wantBoard := []string{"p-1", "p-3", "p-2", "p-4", "p-5"}
	gotBoard := make([]string, len(v.Scoreboard))
	for i, p := range v.Scoreboard {
		gotBoard[i] = p.ID
	}
	assert.Equal(t, wantBoard, gotBoard)
}

func TestView_IsASnapshot(t *testing.T) {
	g := newTestGame(t)
	toVoting(t, g, "Animal", "Tiger")
	require.NoError(t, g.CastPublicVote("p-1", "p-2"))

	v := g.View()
	v.Players[0].Name = "changed"
	v.Voting.Votes["p-1"] = "p-5"
	v.Drawing.Strokes[0].Points[0] = Point{X: -1}

	again := g.View()
	opts := cmpopts.IgnoreFields(View{}, "Scoreboard")
	assert.NotEqual(t, "changed", again.Players[0].Name)
	assert.Equal(t, "p-2", again.Voting.Votes["p-1"])
	assert.True(t, cmp.Equal(g.View(), again, opts))
}

func TestScoreboard_StableOnTies(t *testing.T) {
	players := []Player{
		{ID: "a", Score: 1},
		{ID: "b", Score: 3},
		{ID: "c", Score: 1},
		{ID: "d", Score: 3},
	}

	got := Scoreboard(players)

	ids := []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)
	assert.Equal(t, "a", players[0].ID, "input untouched")
}

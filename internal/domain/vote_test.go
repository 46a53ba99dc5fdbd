package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fivePlayers() []Player {
	return NewRoster(seqIDs()).Players()
}

func TestCountVotes(t *testing.T) {
	players := fivePlayers()

	testCases := []struct {
		desc        string
		votes       map[string]string
		wantLeaders []string
		wantAccused string
	}{
		{
			desc:        "clear majority",
			votes:       map[string]string{"p-1": "p-3", "p-2": "p-3", "p-3": "p-1", "p-4": "p-1", "p-5": "p-1"},
			wantLeaders: []string{"p-1"},
			wantAccused: "p-1",
		},
		{
			desc:        "two way tie",
			votes:       map[string]string{"p-1": "p-2", "p-2": "p-1", "p-3": "p-2", "p-4": "p-1", "p-5": "p-4"},
			wantLeaders: []string{"p-1", "p-2"},
		},
		{
			desc:        "round robin ties everyone",
			votes:       map[string]string{"p-1": "p-2", "p-2": "p-3", "p-3": "p-4", "p-4": "p-5", "p-5": "p-1"},
			wantLeaders: []string{"p-1", "p-2", "p-3", "p-4", "p-5"},
		},
		{
			desc:        "no votes ties everyone at zero",
			votes:       map[string]string{},
			wantLeaders: []string{"p-1", "p-2", "p-3", "p-4", "p-5"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			result := CountVotes(tc.votes, players)

			assert.Equal(t, tc.wantLeaders, result.Leaders)
			accused, ok := result.Resolved()
			assert.Equal(t, tc.wantAccused != "", ok)
			assert.Equal(t, tc.wantAccused, accused)

			sum := 0
			for _, n := range result.Counts {
				sum += n
			}
			assert.Equal(t, len(tc.votes), sum)
		})
	}
}

func TestTally_MissingCandidatesCountZero(t *testing.T) {
	counts := Tally(map[string]string{"p-1": "p-2"}, fivePlayers())

	assert.Equal(t, map[string]int{"p-1": 0, "p-2": 1, "p-3": 0, "p-4": 0, "p-5": 0}, counts)
}

func TestBallot_CompleteAndLastWriteWins(t *testing.T) {
	players := fivePlayers()
	b := NewBallot()

	for _, p := range players[:4] {
		b.Cast(p.ID, "p-2")
	}
	assert.False(t, b.Complete(players))

	b.Cast("p-5", "p-2")
	b.Cast("p-5", "p-4")
	assert.True(t, b.Complete(players))
	assert.Equal(t, "p-4", b.Votes()["p-5"])
	assert.Len(t, b.Votes(), 5)
}

func TestBallot_CastNext(t *testing.T) {
	players := fivePlayers()
	b := NewBallot()

	for i, p := range players {
		voter, err := b.CastNext(players, "p-1")
		require.NoError(t, err)
		assert.Equal(t, p.ID, voter)
		assert.Equal(t, i+1, b.VoterIndex())
	}

	_, err := b.CastNext(players, "p-2")
	assert.ErrorIs(t, err, ErrVotersExhausted)
	assert.True(t, b.Complete(players))
	assert.Equal(t, "p-1", b.Votes()["p-5"])
}

func TestBallot_BreakTie(t *testing.T) {
	players := fivePlayers()
	b := NewBallot()
	assert.ErrorIs(t, b.BreakTie("p-1"), ErrNoTie)

	for _, p := range players {
		b.Cast(p.ID, map[string]string{"p-1": "p-2", "p-2": "p-1", "p-3": "p-1", "p-4": "p-2", "p-5": "p-3"}[p.ID])
	}
	b.Reveal(players)

	assert.Equal(t, []string{"p-1", "p-2"}, b.Tie())
	assert.Empty(t, b.Accused())
	assert.ErrorIs(t, b.BreakTie("p-3"), ErrNotTied)
	require.NoError(t, b.BreakTie("p-2"))
	assert.Equal(t, "p-2", b.Accused())
}

func TestBallot_NoTieBreakWhenResolved(t *testing.T) {
	players := fivePlayers()
	b := NewBallot()
	for _, p := range players {
		b.Cast(p.ID, "p-4")
	}
	b.Reveal(players)

	assert.Equal(t, "p-4", b.Accused())
	assert.ErrorIs(t, b.BreakTie("p-4"), ErrNoTie)
}

func TestVoteMode_Toggle(t *testing.T) {
	assert.Equal(t, VoteModePrivate, VoteModePublic.Toggle())
	assert.Equal(t, VoteModePublic, VoteModePrivate.Toggle())
	assert.False(t, VoteMode("secret").Valid())
}

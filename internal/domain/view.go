package domain

import "sort"

// View is the read model handed to the presentation layer. It is a
// snapshot; mutating it does not affect the game.
type View struct {
	Stage       Stage    `json:"stage"`
	Round       int      `json:"round"`
	Players     []Player `json:"players"`
	ModeratorID string   `json:"moderatorId"`
	Theme       string   `json:"theme"`
	Word        string   `json:"word"`
	ThemeWords  []string `json:"themeWords"`
	Scoreboard  []Player `json:"scoreboard"`

	Cards   *CardsView   `json:"cards,omitempty"`
	Drawing *DrawingView `json:"drawing,omitempty"`
	Voting  *VotingView  `json:"voting,omitempty"`
	Results *ResultsView `json:"results,omitempty"`
}

// CardsView is the reveal pass state
type CardsView struct {
	RevealIndex int    `json:"revealIndex"`
	HolderID    string `json:"holderId,omitempty"`
	Revealed    bool   `json:"revealed"`
	Card        string `json:"card,omitempty"` // only while revealed
	Done        bool   `json:"done"`
}

// DrawingView is the canvas and turn state
type DrawingView struct {
	Turn            int      `json:"turn"`
	Budget          int      `json:"budget"`
	Remaining       int      `json:"remaining"`
	CurrentPlayerID string   `json:"currentPlayerId,omitempty"`
	LineNumber      int      `json:"lineNumber"`
	Strokes         []Stroke `json:"strokes"`
	InProgress      []Point  `json:"inProgress,omitempty"`
	UndoUsed        bool     `json:"undoUsed"`
	CanVote         bool     `json:"canVote"`
}

// VotingView is the accusation state
type VotingView struct {
	Mode           VoteMode          `json:"mode"`
	Votes          map[string]string `json:"votes"`
	VoterIndex     int               `json:"voterIndex"`
	CurrentVoterID string            `json:"currentVoterId,omitempty"`
	Complete       bool              `json:"complete"`
	Tally          map[string]int    `json:"tally"`
	Revealed       bool              `json:"revealed"`
	Tie            []string          `json:"tie,omitempty"`
	AccusedID      string            `json:"accusedId,omitempty"`
}

// ResultsView is the end-of-round state
type ResultsView struct {
	FakeID        string  `json:"fakeId"`
	AccusedID     string  `json:"accusedId"`
	Word          string  `json:"word"`
	AccusedIsFake bool    `json:"accusedIsFake"`
	Guess         string  `json:"guess,omitempty"`
	CloseGuess    bool    `json:"closeGuess"`
	Scored        bool    `json:"scored"`
	Outcome       Outcome `json:"outcome,omitempty"`
	Message       string  `json:"message,omitempty"`
}

// View builds the read model of the current state
func (g *Game) View() View {
	players := g.roster.Players()
	v := View{
		Stage:       g.stage,
		Round:       g.number,
		Players:     players,
		ModeratorID: g.roster.Moderator(),
		Theme:       g.theme,
		Word:        g.word,
		ThemeWords:  g.table.Words(g.theme),
		Scoreboard:  Scoreboard(players),
	}

	switch g.stage {
	case StageCards:
		v.Cards = g.cardsView()
	case StageDrawing:
		v.Drawing = g.drawingView()
	case StageVoting:
		v.Drawing = g.drawingView()
		v.Voting = g.votingView(players)
	case StageResults:
		v.Drawing = g.drawingView()
		v.Voting = g.votingView(players)
		v.Results = g.resultsView()
	}

	return v
}

// Scoreboard orders players by score, highest first, ties in roster order
func Scoreboard(players []Player) []Player {
	sorted := make([]Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	return sorted
}

func (g *Game) cardsView() *CardsView {
	cv := &CardsView{
		RevealIndex: g.deal.revealIndex,
		Revealed:    g.deal.revealed,
		Done:        g.deal.done(g.roster.Len()),
	}
	if holder, ok := g.CurrentCardHolder(); ok {
		cv.HolderID = holder.ID
		if cv.Revealed {
			cv.Card = g.deal.assignment.Card(holder.ID)
		}
	}
	return cv
}

func (g *Game) drawingView() *DrawingView {
	strokes, inProgress := g.Canvas()
	dv := &DrawingView{
		Turn:       g.round.turn,
		Budget:     g.Budget(),
		Remaining:  max(0, g.Budget()-g.round.turn),
		LineNumber: g.LineNumber(),
		Strokes:    strokes,
		InProgress: inProgress,
		UndoUsed:   g.round.canvas.UndoUsed(),
		CanVote:    g.budgetReached(),
	}
	if p, ok := g.CurrentPlayer(); ok {
		dv.CurrentPlayerID = p.ID
	}
	return dv
}

func (g *Game) votingView(players []Player) *VotingView {
	b := g.round.ballot
	vv := &VotingView{
		Mode:       g.voteMode,
		Votes:      b.Votes(),
		VoterIndex: b.VoterIndex(),
		Complete:   b.Complete(players),
		Tally:      Tally(b.Votes(), players),
		Revealed:   b.Revealed(),
		Tie:        b.Tie(),
		AccusedID:  b.Accused(),
	}
	if g.voteMode == VoteModePrivate {
		if p, ok := g.CurrentVoter(); ok {
			vv.CurrentVoterID = p.ID
		}
	}
	return vv
}

func (g *Game) resultsView() *ResultsView {
	return &ResultsView{
		FakeID:        g.FakeID(),
		AccusedID:     g.round.ballot.Accused(),
		Word:          g.word,
		AccusedIsFake: g.AccusedIsFake(),
		Guess:         g.round.guess,
		CloseGuess:    g.round.closeGuess,
		Scored:        g.round.scored,
		Outcome:       g.round.outcome,
		Message:       g.outcomeMessage(),
	}
}

func (g *Game) outcomeMessage() string {
	msg := g.round.outcome.Message()
	if msg != "" && g.round.closeGuess {
		msg += " (the guess was close)"
	}
	return msg
}

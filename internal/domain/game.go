package domain

import (
	"strings"

	"fakeartist/internal/words"
)

// Game is the round state machine of one shared-device session. Its
// transition methods are the only mutators. Methods returning an error
// leave the game exactly as it was; the error says why the action was
// ignored. Game is not safe for concurrent use.
type Game struct {
	stage    Stage
	roster   *Roster
	table    words.Table
	rng      Rand
	theme    string
	word     string
	number   int
	voteMode VoteMode

	deal  *deal  // set from card generation until the round ends
	round *round // transient play state, recreated at round boundaries
}

// NewGame creates a game in the lobby with a default roster
func NewGame(table words.Table, rng Rand, newID IDSource) (*Game, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	theme := table.FirstTheme()
	return &Game{
		stage:    StageLobby,
		roster:   NewRoster(newID),
		table:    table,
		rng:      rng,
		theme:    theme,
		word:     table.FirstWord(theme),
		number:   1,
		voteMode: VoteModePublic,
		round:    newRound(),
	}, nil
}

// Stage returns the current stage
func (g *Game) Stage() Stage {
	return g.stage
}

// RoundNumber returns the 1-based round counter
func (g *Game) RoundNumber() int {
	return g.number
}

// Theme returns the selected theme
func (g *Game) Theme() string {
	return g.theme
}

// Word returns the selected secret word
func (g *Game) Word() string {
	return g.word
}

// Players returns a snapshot of the roster
func (g *Game) Players() []Player {
	return g.roster.Players()
}

// ModeratorID returns the moderator's player ID
func (g *Game) ModeratorID() string {
	return g.roster.Moderator()
}

// VoteMode returns the current vote mode
func (g *Game) VoteMode() VoteMode {
	return g.voteMode
}

// FakeID returns the Fake of the current deal, empty before cards exist
func (g *Game) FakeID() string {
	if g.deal == nil {
		return ""
	}
	return g.deal.assignment.FakeID
}

// Assignment returns the current deal, false before cards exist
func (g *Game) Assignment() (Assignment, bool) {
	if g.deal == nil {
		return Assignment{}, false
	}
	return g.deal.assignment, true
}

// transition moves to target if the stage table allows it
func (g *Game) transition(target Stage) error {
	if !g.stage.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	g.stage = target
	return nil
}

func (g *Game) require(stages ...Stage) error {
	for _, s := range stages {
		if g.stage == s {
			return nil
		}
	}
	return ErrWrongStage
}

// --- lobby ---

// SetPlayerCount resizes the roster, clamped to [MinPlayers, MaxPlayers]
func (g *Game) SetPlayerCount(n int) error {
	if err := g.require(StageLobby); err != nil {
		return err
	}
	g.roster.Resize(n)
	return nil
}

// SetPlayerName edits a player's display name
func (g *Game) SetPlayerName(playerID, name string) error {
	if err := g.require(StageLobby); err != nil {
		return err
	}
	return g.roster.Rename(playerID, name)
}

// SetPlayerColor edits a player's color
func (g *Game) SetPlayerColor(playerID, color string) error {
	if err := g.require(StageLobby); err != nil {
		return err
	}
	return g.roster.Recolor(playerID, color)
}

// SelectModerator picks the moderator
func (g *Game) SelectModerator(playerID string) error {
	if err := g.require(StageLobby); err != nil {
		return err
	}
	return g.roster.SetModerator(playerID)
}

// RandomizeModerator picks the moderator uniformly at random
func (g *Game) RandomizeModerator() error {
	if err := g.require(StageLobby); err != nil {
		return err
	}
	g.roster.RandomizeModerator(g.rng)
	return nil
}

// StartRound hands the device to the moderator
func (g *Game) StartRound() error {
	if err := g.require(StageLobby); err != nil {
		return err
	}
	g.round = newRound()
	if g.word == "" {
		g.word = g.table.FirstWord(g.theme)
	}
	return g.transition(StageModerator)
}

// --- moderator ---

// SelectTheme switches theme and resets the word to the theme's first entry
func (g *Game) SelectTheme(theme string) error {
	if err := g.require(StageModerator); err != nil {
		return err
	}
	if !g.table.HasTheme(theme) {
		return ErrUnknownTheme
	}
	g.theme = theme
	g.word = g.table.FirstWord(theme)
	return nil
}

// SelectWord picks the secret word from the current theme
func (g *Game) SelectWord(word string) error {
	if err := g.require(StageModerator); err != nil {
		return err
	}
	if word == "" {
		return ErrEmptyWord
	}
	if !g.table.Contains(g.theme, word) {
		return ErrUnknownWord
	}
	g.word = word
	return nil
}

// RandomWord picks the secret word uniformly from the current theme
func (g *Game) RandomWord() (string, error) {
	if err := g.require(StageModerator); err != nil {
		return "", err
	}
	word := g.table.RandomWord(g.theme, g.rng.IntN)
	if word == "" {
		return "", ErrUnknownTheme
	}
	g.word = word
	return word, nil
}

// BackToLobby abandons the moderator screen
func (g *Game) BackToLobby() error {
	if err := g.require(StageModerator); err != nil {
		return err
	}
	return g.transition(StageLobby)
}

// GenerateCards picks the Fake, deals the cards and starts the reveal pass
func (g *Game) GenerateCards() error {
	if err := g.require(StageModerator); err != nil {
		return err
	}
	if g.word == "" {
		return ErrEmptyWord
	}
	g.round = newRound()
	g.deal = &deal{assignment: AssignRoles(g.roster.Players(), g.word, g.rng)}
	return g.transition(StageCards)
}

// --- cards ---

// CurrentCardHolder returns the player whose card is up, false once every
// card has been seen
func (g *Game) CurrentCardHolder() (Player, bool) {
	if g.stage != StageCards || g.deal == nil || g.deal.done(g.roster.Len()) {
		return Player{}, false
	}
	return *g.roster.At(g.deal.revealIndex), true
}

// RevealCard shows the current player's card
func (g *Game) RevealCard() error {
	if err := g.require(StageCards); err != nil {
		return err
	}
	if g.deal.done(g.roster.Len()) {
		return ErrCardsDone
	}
	g.deal.revealed = true
	return nil
}

// HideCard hides the current card again
func (g *Game) HideCard() error {
	if err := g.require(StageCards); err != nil {
		return err
	}
	if !g.deal.revealed {
		return ErrCardHidden
	}
	g.deal.revealed = false
	return nil
}

// NextCard hides the revealed card and passes the device on
func (g *Game) NextCard() error {
	if err := g.require(StageCards); err != nil {
		return err
	}
	if g.deal.done(g.roster.Len()) {
		return ErrCardsDone
	}
	if !g.deal.revealed {
		return ErrCardHidden
	}
	g.deal.revealed = false
	g.deal.revealIndex++
	return nil
}

// BeginDrawing starts the drawing stage after the full reveal pass
func (g *Game) BeginDrawing() error {
	if err := g.require(StageCards); err != nil {
		return err
	}
	if !g.deal.done(g.roster.Len()) {
		return ErrCardsPending
	}
	g.round = newRound()
	return g.transition(StageDrawing)
}

// --- drawing ---

// Turn returns the number of strokes committed toward the budget
func (g *Game) Turn() int {
	return g.round.turn
}

// Budget returns the total strokes of the round
func (g *Game) Budget() int {
	return StrokeBudget(g.roster.Len())
}

// CurrentPlayer returns whose turn it is, false outside the drawing stage
func (g *Game) CurrentPlayer() (Player, bool) {
	if g.stage != StageDrawing {
		return Player{}, false
	}
	p := g.roster.At(TurnIndex(g.round.turn, g.roster.Len()))
	if p == nil {
		return Player{}, false
	}
	return *p, true
}

// LineNumber returns which of their two lines the current player draws
func (g *Game) LineNumber() int {
	return LineNumber(g.round.turn, g.roster.Len())
}

func (g *Game) budgetReached() bool {
	return g.round.turn >= g.Budget()
}

// Canvas returns the committed strokes and the stroke in progress
func (g *Game) Canvas() ([]Stroke, []Point) {
	return g.round.canvas.Strokes(), g.round.canvas.InProgress()
}

// PointerDown starts the current player's stroke at p
func (g *Game) PointerDown(p Point) error {
	if err := g.require(StageDrawing); err != nil {
		return err
	}
	if _, ok := g.CurrentPlayer(); !ok {
		return ErrPlayerNotFound
	}
	if g.budgetReached() {
		return ErrBudgetReached
	}
	return g.round.canvas.Begin(p)
}

// PointerMove extends the stroke in progress
func (g *Game) PointerMove(p Point) error {
	if err := g.require(StageDrawing); err != nil {
		return err
	}
	return g.round.canvas.Extend(p)
}

// PointerUp finishes the stroke in progress. A stroke of fewer than two
// points is dropped without using the turn. Committing the last stroke of
// the budget moves the game to voting.
func (g *Game) PointerUp() error {
	if err := g.require(StageDrawing); err != nil {
		return err
	}
	player, ok := g.CurrentPlayer()
	if !ok {
		return ErrPlayerNotFound
	}

	points, ok, err := g.round.canvas.End()
	if err != nil || !ok {
		return err
	}

	g.round.canvas.Commit(Stroke{
		ID:       StrokeID(player.ID, g.round.turn),
		PlayerID: player.ID,
		Color:    player.Color,
		Points:   points,
	})
	g.round.turn++

	if g.budgetReached() {
		return g.transition(StageVoting)
	}
	return nil
}

// Undo removes the most recent stroke and gives its turn back. It can be
// used once per round, and brings the game back to drawing if the last
// stroke had already ended it.
func (g *Game) Undo() error {
	if err := g.require(StageDrawing, StageVoting); err != nil {
		return err
	}
	if _, err := g.round.canvas.Undo(); err != nil {
		return err
	}
	g.round.turn = max(0, g.round.turn-1)
	if g.stage == StageVoting {
		g.round.resetVotes()
	}
	return g.transition(StageDrawing)
}

// Clear wipes the canvas and restarts the drawing from the first turn. The
// caller must have obtained the moderator's confirmation.
func (g *Game) Clear(confirmed bool) error {
	if err := g.require(StageDrawing, StageVoting); err != nil {
		return err
	}
	if !confirmed {
		return ErrNotConfirmed
	}
	g.round = newRound()
	return g.transition(StageDrawing)
}

// GoToVoting moves to voting once every stroke is drawn
func (g *Game) GoToVoting() error {
	if err := g.require(StageDrawing); err != nil {
		return err
	}
	if !g.budgetReached() {
		return ErrBudgetPending
	}
	return g.transition(StageVoting)
}

// --- voting ---

// SetVoteMode switches between public and private voting before the reveal
func (g *Game) SetVoteMode(mode VoteMode) error {
	if err := g.require(StageVoting); err != nil {
		return err
	}
	if !mode.Valid() {
		return ErrWrongVoteMode
	}
	if g.round.ballot.Revealed() {
		return ErrVotesRevealed
	}
	g.voteMode = mode
	return nil
}

// ToggleVoteMode flips the vote mode before the reveal
func (g *Game) ToggleVoteMode() error {
	return g.SetVoteMode(g.voteMode.Toggle())
}

// CastPublicVote sets voterID's accusation; it may change until the reveal
func (g *Game) CastPublicVote(voterID, targetID string) error {
	if err := g.require(StageVoting); err != nil {
		return err
	}
	if g.voteMode != VoteModePublic {
		return ErrWrongVoteMode
	}
	if g.round.ballot.Revealed() {
		return ErrVotesRevealed
	}
	if !g.roster.Contains(voterID) || !g.roster.Contains(targetID) {
		return ErrPlayerNotFound
	}
	g.round.ballot.Cast(voterID, targetID)
	return nil
}

// CastPrivateVote records the accusation of the player whose private turn
// it is and moves on to the next voter in roster order
func (g *Game) CastPrivateVote(targetID string) error {
	if err := g.require(StageVoting); err != nil {
		return err
	}
	if g.voteMode != VoteModePrivate {
		return ErrWrongVoteMode
	}
	if g.round.ballot.Revealed() {
		return ErrVotesRevealed
	}
	if !g.roster.Contains(targetID) {
		return ErrPlayerNotFound
	}
	_, err := g.round.ballot.CastNext(g.roster.Players(), targetID)
	return err
}

// CurrentVoter returns the next private voter, false when all have voted
func (g *Game) CurrentVoter() (Player, bool) {
	p := g.roster.At(g.round.ballot.VoterIndex())
	if p == nil {
		return Player{}, false
	}
	return *p, true
}

// VotesComplete holds when every player has exactly one accusation
func (g *Game) VotesComplete() bool {
	return g.round.ballot.Complete(g.roster.Players())
}

// RevealVotes tallies a complete vote set. A single leader becomes the
// accused; several leaders are left for the moderator to choose from.
func (g *Game) RevealVotes() error {
	if err := g.require(StageVoting); err != nil {
		return err
	}
	if !g.VotesComplete() {
		return ErrVotesIncomplete
	}
	g.round.ballot.Reveal(g.roster.Players())
	return nil
}

// PickAccused is the moderator's tie-break among the tied players
func (g *Game) PickAccused(playerID string) error {
	if err := g.require(StageVoting); err != nil {
		return err
	}
	return g.round.ballot.BreakTie(playerID)
}

// BackToDrawing aborts voting. Every vote is discarded; strokes and the
// turn counter are kept.
func (g *Game) BackToDrawing() error {
	if err := g.require(StageVoting); err != nil {
		return err
	}
	g.round.resetVotes()
	return g.transition(StageDrawing)
}

// ResolveToResults moves on once an accused player is settled
func (g *Game) ResolveToResults() error {
	if err := g.require(StageVoting); err != nil {
		return err
	}
	if g.round.ballot.Accused() == "" {
		return ErrNoAccused
	}
	return g.transition(StageResults)
}

// AccusedID returns the accused player's ID, empty if not settled
func (g *Game) AccusedID() string {
	return g.round.ballot.Accused()
}

// --- results ---

// AccusedIsFake reports whether the group caught the Fake
func (g *Game) AccusedIsFake() bool {
	accused := g.round.ballot.Accused()
	return accused != "" && accused == g.FakeID()
}

// Scored reports whether this round's scoring has been applied
func (g *Game) Scored() bool {
	return g.round.scored
}

// SubmitGuess takes the caught Fake's one guess at the word and scores
// the round
func (g *Game) SubmitGuess(guess string) error {
	if err := g.require(StageResults); err != nil {
		return err
	}
	if !g.AccusedIsFake() {
		return ErrNoGuess
	}
	if g.round.scored {
		return ErrAlreadyScored
	}
	if strings.TrimSpace(guess) == "" {
		return ErrBlankGuess
	}

	correct := GuessMatches(guess, g.word)
	g.round.guess = guess
	g.round.closeGuess = IsCloseGuess(guess, g.word)
	g.applyScoring(DecideOutcome(true, correct))
	return nil
}

// ApplyMissScoring scores a round where the group accused an artist
func (g *Game) ApplyMissScoring() error {
	if err := g.require(StageResults); err != nil {
		return err
	}
	if g.AccusedIsFake() {
		return ErrFakeCaught
	}
	if g.round.scored {
		return ErrAlreadyScored
	}
	g.applyScoring(OutcomeGroupMissed)
	return nil
}

func (g *Game) applyScoring(outcome Outcome) {
	deltas := ScoreDeltas(outcome, g.roster.Players(), g.FakeID(), g.roster.Moderator())
	g.roster.AddScores(deltas)
	g.round.outcome = outcome
	g.round.scored = true
}

// Outcome returns how the round ended, empty until scored
func (g *Game) Outcome() Outcome {
	return g.round.outcome
}

// NextRound keeps scores and hands the device to the moderator again
func (g *Game) NextRound() error {
	if err := g.require(StageResults); err != nil {
		return err
	}
	g.endRound()
	g.number++
	return g.transition(StageModerator)
}

// ChangeModerator keeps scores and the round counter and returns to the lobby
func (g *Game) ChangeModerator() error {
	if err := g.require(StageResults); err != nil {
		return err
	}
	g.endRound()
	return g.transition(StageLobby)
}

// ResetGame zeroes every score, restarts the round counter and returns to
// the lobby. Names and colors are kept.
func (g *Game) ResetGame() error {
	if err := g.require(StageResults); err != nil {
		return err
	}
	g.endRound()
	g.number = 1
	g.roster.ResetScores()
	return g.transition(StageLobby)
}

func (g *Game) endRound() {
	g.round = newRound()
	g.deal = nil
	g.word = g.table.FirstWord(g.theme)
}

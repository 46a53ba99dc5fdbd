package ws

import (
	"encoding/json"
	"errors"
	"fmt"

	"fakeartist/internal/app"
	"fakeartist/internal/domain"
)

var (
	ErrUnknownMessage = errors.New("unknown message type")
	ErrInvalidPayload = errors.New("invalid payload")
)

// decodeAction turns a client message into the game action it requests
func decodeAction(msg ClientMessage) (app.Action, error) {
	switch msg.Type {
	case MsgSetPlayerCount:
		var p PlayerCountPayload
		if err := decodePayload(msg.Payload, &p); err != nil {
			return nil, err
		}
		return func(g *domain.Game) error { return g.SetPlayerCount(p.Count) }, nil
	case MsgSetPlayerName:
		var p PlayerFieldPayload
		if err := decodePayload(msg.Payload, &p); err != nil {
			return nil, err
		}
		return func(g *domain.Game) error { return g.SetPlayerName(p.PlayerID, p.Name) }, nil
	case MsgSetPlayerColor:
		var p PlayerFieldPayload
		if err := decodePayload(msg.Payload, &p); err != nil {
			return nil, err
		}
		return func(g *domain.Game) error { return g.SetPlayerColor(p.PlayerID, p.Color) }, nil
	case MsgSelectModerator:
		var p PlayerPayload
		if err := decodePayload(msg.Payload, &p); err != nil {
			return nil, err
		}
		return func(g *domain.Game) error { return g.SelectModerator(p.PlayerID) }, nil
	case MsgRandomizeModerator:
		return (*domain.Game).RandomizeModerator, nil
	case MsgStartRound:
		return (*domain.Game).StartRound, nil

	case MsgSelectTheme:
		var p ThemePayload
		if err := decodePayload(msg.Payload, &p); err != nil {
			return nil, err
		}
		return func(g *domain.Game) error { return g.SelectTheme(p.Theme) }, nil
	case MsgSelectWord:
		var p WordPayload
		if err := decodePayload(msg.Payload, &p); err != nil {
			return nil, err
		}
		return func(g *domain.Game) error { return g.SelectWord(p.Word) }, nil
	case MsgRandomWord:
		return func(g *domain.Game) error {
			_, err := g.RandomWord()
			return err
		}, nil
	case MsgBackToLobby:
		return (*domain.Game).BackToLobby, nil
	case MsgGenerateCards:
		return (*domain.Game).GenerateCards, nil

	case MsgRevealCard:
		return (*domain.Game).RevealCard, nil
	case MsgHideCard:
		return (*domain.Game).HideCard, nil
	case MsgNextCard:
		return (*domain.Game).NextCard, nil
	case MsgBeginDrawing:
		return (*domain.Game).BeginDrawing, nil

	case MsgPointerDown, MsgPointerMove:
		var p PointPayload
		if err := decodePayload(msg.Payload, &p); err != nil {
			return nil, err
		}
		pt := domain.Point{X: p.X, Y: p.Y}
		if msg.Type == MsgPointerDown {
			return func(g *domain.Game) error { return g.PointerDown(pt) }, nil
		}
		return func(g *domain.Game) error { return g.PointerMove(pt) }, nil
	case MsgPointerUp:
		return (*domain.Game).PointerUp, nil
	case MsgUndo:
		return (*domain.Game).Undo, nil
	case MsgClear:
		var p ClearPayload
		if err := decodePayload(msg.Payload, &p); err != nil {
			return nil, err
		}
		return func(g *domain.Game) error { return g.Clear(p.Confirmed) }, nil
	case MsgGoToVoting:
		return (*domain.Game).GoToVoting, nil

	case MsgToggleVoteMode:
		return (*domain.Game).ToggleVoteMode, nil
	case MsgSetVoteMode:
		var p VoteModePayload
		if err := decodePayload(msg.Payload, &p); err != nil {
			return nil, err
		}
		return func(g *domain.Game) error { return g.SetVoteMode(p.Mode) }, nil
	case MsgCastPublicVote:
		var p VotePayload
		if err := decodePayload(msg.Payload, &p); err != nil {
			return nil, err
		}
		return func(g *domain.Game) error { return g.CastPublicVote(p.VoterID, p.TargetID) }, nil
	case MsgCastPrivateVote:
		var p VotePayload
		if err := decodePayload(msg.Payload, &p); err != nil {
			return nil, err
		}
		return func(g *domain.Game) error { return g.CastPrivateVote(p.TargetID) }, nil
	case MsgRevealVotes:
		return (*domain.Game).RevealVotes, nil
	case MsgPickAccused:
		var p PlayerPayload
		if err := decodePayload(msg.Payload, &p); err != nil {
			return nil, err
		}
		return func(g *domain.Game) error { return g.PickAccused(p.PlayerID) }, nil
	case MsgBackToDrawing:
		return (*domain.Game).BackToDrawing, nil
	case MsgResolveToResults:
		return (*domain.Game).ResolveToResults, nil

	case MsgSubmitGuess:
		var p GuessPayload
		if err := decodePayload(msg.Payload, &p); err != nil {
			return nil, err
		}
		return func(g *domain.Game) error { return g.SubmitGuess(p.Guess) }, nil
	case MsgApplyMissScoring:
		return (*domain.Game).ApplyMissScoring, nil
	case MsgNextRound:
		return (*domain.Game).NextRound, nil
	case MsgChangeModerator:
		return (*domain.Game).ChangeModerator, nil
	case MsgResetGame:
		return (*domain.Game).ResetGame, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
}

func decodePayload(raw json.RawMessage, target interface{}) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: missing payload", ErrInvalidPayload)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}

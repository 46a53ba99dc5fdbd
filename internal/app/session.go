package app

import (
	"log/slog"
	"sync"

	"fakeartist/internal/domain"
)

// eventQueueSize bounds the broadcast backlog
const eventQueueSize = 256

// ClientConnection represents a connected presentation client
type ClientConnection interface {
	Send(message interface{}) error
	GetClientID() string
	Close() error
}

// Action mutates the game; a non-nil error means it was ignored
type Action func(g *domain.Game) error

// Session owns the one game of the shared device. Actions run one at a
// time to completion; the resulting state is broadcast to every client.
type Session struct {
	game      *domain.Game
	mu        sync.Mutex
	clients   map[string]ClientConnection
	clientsMu sync.RWMutex
	logger    *slog.Logger

	// Event channel for broadcasting
	events    chan *domain.GameEvent
	done      chan struct{}
	closeOnce sync.Once
}

// NewSession creates a session around game
func NewSession(game *domain.Game, logger *slog.Logger) *Session {
	session := &Session{
		game:    game,
		clients: make(map[string]ClientConnection),
		logger:  logger,
		events:  make(chan *domain.GameEvent, eventQueueSize),
		done:    make(chan struct{}),
	}

	// Start event broadcaster
	go session.eventLoop()

	return session
}

// View returns the current read model
func (s *Session) View() domain.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.View()
}

// RegisterClient registers a client connection
func (s *Session) RegisterClient(client ClientConnection) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[client.GetClientID()] = client
}

// UnregisterClient removes a client connection
func (s *Session) UnregisterClient(clientID string) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	delete(s.clients, clientID)
}

// ClientCount returns the number of connected clients
func (s *Session) ClientCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// Apply runs one action against the game. Ignored actions change nothing
// and broadcast nothing; Apply reports whether the action took effect.
func (s *Session) Apply(clientID, name string, action Action) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	stage := s.game.Stage()
	round := s.game.RoundNumber()
	scored := s.game.Scored()

	if err := action(s.game); err != nil {
		s.logger.Debug("action ignored",
			"action", name,
			"clientID", clientID,
			"stage", stage,
			"reason", err,
		)
		return false
	}

	if next := s.game.Stage(); next != stage {
		s.logger.Info("stage changed",
			"from", stage,
			"to", next,
			"round", s.game.RoundNumber(),
			"action", name,
		)
		s.queueEvent(domain.NewEvent(domain.EventStageChanged, &domain.StageChangedPayload{
			From:  stage,
			To:    next,
			Round: s.game.RoundNumber(),
		}))
	} else if s.game.RoundNumber() != round {
		s.logger.Info("round changed", "round", s.game.RoundNumber())
	}

	if !scored && s.game.Scored() {
		outcome := s.game.Outcome()
		s.logger.Info("round scored",
			"round", s.game.RoundNumber(),
			"outcome", outcome,
			"fakeID", s.game.FakeID(),
			"accusedID", s.game.AccusedID(),
		)
		s.queueEvent(domain.NewEvent(domain.EventRoundScored, &domain.RoundScoredPayload{
			Outcome: outcome,
			Message: outcome.Message(),
			FakeID:  s.game.FakeID(),
			Players: s.game.Players(),
		}))
	}

	s.queueEvent(domain.NewEvent(domain.EventState, s.game.View()))
	return true
}

// queueEvent adds an event to the broadcast queue
func (s *Session) queueEvent(event *domain.GameEvent) {
	select {
	case s.events <- event:
	default:
		s.logger.Warn("event queue full, dropping event", "type", event.Type)
	}
}

// eventLoop processes events and broadcasts to clients
func (s *Session) eventLoop() {
	for {
		select {
		case <-s.done:
			return
		case event := <-s.events:
			s.broadcastEvent(event)
		}
	}
}

// broadcastEvent sends an event to every client
func (s *Session) broadcastEvent(event *domain.GameEvent) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	for clientID, client := range s.clients {
		if err := client.Send(event); err != nil {
			s.logger.Debug("failed to send to client", "clientID", clientID, "error", err)
		}
	}
}

// Close shuts down the session and every client connection
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)

		s.clientsMu.Lock()
		for _, client := range s.clients {
			client.Close()
		}
		s.clients = make(map[string]ClientConnection)
		s.clientsMu.Unlock()
	})
}

package ws

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"fakeartist/internal/app"
)

// Limits configures the per-connection token bucket for inbound messages.
// A zero Rate disables limiting.
type Limits struct {
	Rate  float64
	Burst int
}

// Handler handles WebSocket connections
type Handler struct {
	session  *app.Session
	limits   Limits
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(session *app.Session, limits Limits, logger *slog.Logger) *Handler {
	return &Handler{
		session: session,
		limits:  limits,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// The server binds to loopback by default
				return true
			},
		},
		logger: logger,
	}
}

func (h *Handler) newLimiter() *rate.Limiter {
	if h.limits.Rate <= 0 {
		return nil
	}
	burst := h.limits.Burst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(h.limits.Rate), burst)
}

// ServeHTTP handles WebSocket upgrade requests
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	clientID := uuid.New().String()
	client := NewClient(conn, h.session, clientID, h.newLimiter(), h.logger)

	h.session.RegisterClient(client)
	h.logger.Info("websocket connected", "clientID", clientID, "clients", h.session.ClientCount())

	client.sendConnected()
	client.Run()
}

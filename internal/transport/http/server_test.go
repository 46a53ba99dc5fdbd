package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakeartist/internal/app"
	"fakeartist/internal/config"
	"fakeartist/internal/domain"
	"fakeartist/internal/words"
)

type zeroRand struct{}

func (zeroRand) IntN(int) int { return 0 }

func newTestServer(t *testing.T) (*httptest.Server, *app.Session) {
	t.Helper()
	n := 0
	table := words.Default()
	game, err := domain.NewGame(table, zeroRand{}, func() string {
		n++
		return "p-" + strconv.Itoa(n)
	})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session := app.NewSession(game, logger)
	t.Cleanup(session.Close)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: "0", Env: "development"},
		Game:   config.GameConfig{MessageRate: 10, MessageBurst: 10},
	}
	srv := httptest.NewServer(NewServer(cfg, session, table, logger).Handler())
	t.Cleanup(srv.Close)
	return srv, session
}

func getJSON(t *testing.T, url string, data interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	envelope := Response{Data: data}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp.StatusCode
}

func TestHandleHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	var health HealthResponse
	status := getJSON(t, srv.URL+"/api/health", &health)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 0, health.Clients)
}

func TestHandleState(t *testing.T) {
	srv, session := newTestServer(t)

	var view domain.View
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/state", &view))
	assert.Equal(t, domain.StageLobby, view.Stage)
	assert.Len(t, view.Players, 5)
	assert.Nil(t, view.Drawing)

	require.True(t, session.Apply("test", "start_round", (*domain.Game).StartRound))

	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/state", &view))
	assert.Equal(t, domain.StageModerator, view.Stage)
}

func TestHandleThemes(t *testing.T) {
	srv, _ := newTestServer(t)

	var themes ThemesResponse
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/api/themes", &themes))

	want := words.Default().Catalog()
	require.Len(t, themes.Themes, len(want))
	for i := range want {
		assert.Equal(t, want[i].Name, themes.Themes[i].Name)
		assert.Equal(t, want[i].Words, themes.Themes[i].Words)
	}
}

func TestUnknownAPIPath(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/rooms")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestMiddleware_Preflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/state", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/DoyleJ11/lol-draft-sim/internal/champion"
	"github.com/DoyleJ11/lol-draft-sim/internal/engine"
	"github.com/DoyleJ11/lol-draft-sim/internal/hub"
	"github.com/DoyleJ11/lol-draft-sim/internal/lobby"
	"github.com/DoyleJ11/lol-draft-sim/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setup(t *testing.T) (*httptest.Server, *hub.Hub) {
	t.Helper()
	reg, err := champion.Default()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	h := hub.NewHub(ctx, zap.NewNop())

	srv := httptest.NewServer(SetupRoutes(h, reg, zap.NewNop()))
	t.Cleanup(srv.Close)
	return srv, h
}

func getJSON(t *testing.T, u string, v any) int {
	t.Helper()
	resp, err := http.Get(u)
	require.NoError(t, err)
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK && v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp.StatusCode
}

func TestHealthz(t *testing.T) {
	srv, _ := setup(t)
	assert.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/healthz", nil))
}

func TestListChampions(t *testing.T) {
	srv, _ := setup(t)

	var all types.ChampionList
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/champions", &all))
	assert.Equal(t, 32, all.Count)

	var mids types.ChampionList
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/champions?role=mid", &mids))
	assert.Equal(t, 9, mids.Count)
}

func TestGetChampion(t *testing.T) {
	srv, _ := setup(t)

	var c champion.Champion
	require.Equal(t, http.StatusOK, getJSON(t, srv.URL+"/champions/"+url.PathEscape("miss fortune"), &c))
	assert.Equal(t, "Miss Fortune", c.Name)

	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/champions/teemo", nil))
}

func TestGetLobby(t *testing.T) {
	srv, h := setup(t)

	code, lb, err := h.Open()
	require.NoError(t, err)
	lb.Announce(engine.Event{Type: engine.EvtPhaseStarted, Game: 1, Mode: engine.ModeTournament, Phase: engine.PhaseBan1})

	// the publish is asynchronous; poll until it lands
	var view types.LobbyView
	require.Eventually(t, func() bool {
		return getJSON(t, srv.URL+"/lobbies/"+code, &view) == http.StatusOK && view.Version == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, code, view.Code)
	assert.Equal(t, engine.PhaseBan1, view.Board.Phase)
	assert.Equal(t, engine.TeamBlue, view.Board.ActiveTeam)

	assert.Equal(t, http.StatusNotFound, getJSON(t, srv.URL+"/lobbies/NOPE00", nil))

	lb.Send(lobby.Shutdown{})
	<-lb.Done()
	assert.Equal(t, http.StatusGone, getJSON(t, srv.URL+"/lobbies/"+code, nil))
}

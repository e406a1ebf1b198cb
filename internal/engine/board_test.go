package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceMatchesResult(t *testing.T) {
	rec := &recorder{}
	s := newSession(t, Config{
		Mode:      ModeFearless,
		Registry:  defaultRegistry(t),
		Input:     newScript(fearlessScript...),
		Announcer: rec,
		BlueName:  "T1",
	})
	res, err := s.Run(context.Background())
	require.NoError(t, err)

	b := Reduce(rec.events)
	assert.Equal(t, PhaseDone, b.Phase)
	assert.Equal(t, 20, b.Cursor)
	assert.Equal(t, res.Picks, b.Picks)
	assert.Equal(t, res.Bans, b.Bans)
	assert.Equal(t, "T1", b.Sides[TeamBlue])
	assert.Equal(t, Team(""), b.ActiveTeam)
	assert.Empty(t, b.LastRejection)
}

func TestBoardTracksActiveTeam(t *testing.T) {
	b := NewBoard().Apply(Event{Type: EvtPhaseStarted, Game: 1, Mode: ModeFearless, Phase: PhaseBan1})
	assert.Equal(t, TeamBlue, b.ActiveTeam)

	b = b.Apply(Event{Type: EvtChampionBanned, Game: 1, Mode: ModeFearless, Team: TeamBlue, Champion: "Zed"})
	assert.Equal(t, TeamRed, b.ActiveTeam)
	assert.Equal(t, 1, b.Cursor)

	b = b.Apply(Event{Type: EvtSelectionRejected, Game: 1, Team: TeamRed, Reason: "unknown champion"})
	assert.Equal(t, "unknown champion", b.LastRejection)

	b = b.Apply(Event{Type: EvtChampionBanned, Game: 1, Mode: ModeFearless, Team: TeamRed, Champion: "Ahri"})
	assert.Empty(t, b.LastRejection)
	assert.Equal(t, TeamRed, b.ActiveTeam)
}

func TestBoardOffer(t *testing.T) {
	b := NewBoard().Apply(Event{Type: EvtPhaseStarted, Game: 1, Mode: ModeRandom, Phase: PhaseOffer})
	assert.Equal(t, Team(""), b.ActiveTeam)

	b = b.Apply(Event{Type: EvtChoiceOffered, Game: 1, Team: TeamBlue, Options: []string{"Garen", "Lux", "Vi"}})
	assert.Equal(t, TeamBlue, b.ActiveTeam)
	assert.Equal(t, []string{"Garen", "Lux", "Vi"}, b.Offer)

	b = b.Apply(Event{Type: EvtChampionPicked, Game: 1, Team: TeamBlue, Champion: "Lux"})
	assert.Nil(t, b.Offer)
	assert.Equal(t, []string{"Lux"}, b.Picks[TeamBlue])
	assert.Equal(t, PhaseOffer, b.Phase)
}

func TestBoardApplyDoesNotMutate(t *testing.T) {
	before := NewBoard().Apply(Event{Type: EvtChampionPicked, Game: 1, Team: TeamBlue, Champion: "Lux"})
	after := before.Apply(Event{Type: EvtChampionPicked, Game: 1, Team: TeamBlue, Champion: "Vi"})

	assert.Equal(t, []string{"Lux"}, before.Picks[TeamBlue])
	assert.Equal(t, []string{"Lux", "Vi"}, after.Picks[TeamBlue])
}

func TestBoardResetsOnNewGame(t *testing.T) {
	b := NewBoard().Apply(Event{Type: EvtChampionPicked, Game: 1, Team: TeamBlue, Champion: "Lux"})
	b = b.Apply(Event{Type: EvtPhaseStarted, Game: 2, Mode: ModeFearless, Phase: PhaseBan1})

	assert.Equal(t, 2, b.Game)
	assert.Empty(t, b.Picks[TeamBlue])
	assert.Equal(t, 0, b.Cursor)
}

package engine

import "slices"

// Board is the state of a draft as seen by a spectator, rebuilt only from
// events.
type Board struct {
	Game          int               `json:"game"`
	Mode          Mode              `json:"mode,omitempty"`
	Phase         Phase             `json:"phase"`
	Cursor        int               `json:"cursor"`
	ActiveTeam    Team              `json:"active_team,omitempty"`
	Sides         map[Team]string   `json:"sides"`
	Picks         map[Team][]string `json:"picks"`
	Bans          map[Team][]string `json:"bans"`
	Offer         []string          `json:"offer,omitempty"`
	LastRejection string            `json:"last_rejection,omitempty"`
}

func NewBoard() Board {
	return Board{
		Sides: map[Team]string{},
		Picks: map[Team][]string{TeamBlue: {}, TeamRed: {}},
		Bans:  map[Team][]string{TeamBlue: {}, TeamRed: {}},
	}
}

func Reduce(events []Event) Board {
	b := NewBoard()
	for _, e := range events {
		b = b.Apply(e)
	}
	return b
}

// Apply returns a new Board; the receiver is left untouched so snapshots
// handed to other goroutines never change underneath them.
func (b Board) Apply(e Event) Board {
	if e.Game != 0 && e.Game != b.Game {
		next := NewBoard()
		next.Game = e.Game
		b = next
	} else {
		b = b.clone()
	}
	if e.Mode != "" {
		b.Mode = e.Mode
	}
	if e.Side != "" {
		b.Sides[e.Team] = e.Side
	}

	switch e.Type {
	case EvtPhaseStarted:
		b.Phase = e.Phase
		b.ActiveTeam = b.scheduledTeam()
	case EvtChoiceOffered:
		b.Offer = slices.Clone(e.Options)
		b.ActiveTeam = e.Team
	case EvtChampionBanned:
		b.Bans[e.Team] = append(b.Bans[e.Team], e.Champion)
		b.advance()
	case EvtChampionPicked:
		b.Picks[e.Team] = append(b.Picks[e.Team], e.Champion)
		b.Offer = nil
		b.advance()
	case EvtSelectionRejected:
		b.LastRejection = e.Reason
	case EvtDraftCompleted:
		b.Phase = PhaseDone
		b.ActiveTeam = ""
		b.Offer = nil
	}
	return b
}

func (b *Board) advance() {
	b.Cursor++
	b.LastRejection = ""
	if proto, ok := Protocols[b.Mode]; ok {
		b.Phase = DerivePhase(proto, b.Cursor)
	}
	b.ActiveTeam = b.scheduledTeam()
}

// scheduledTeam is empty for the randomized-offer mode, where the next side
// is only known once an offer is made.
func (b Board) scheduledTeam() Team {
	proto, ok := Protocols[b.Mode]
	if !ok {
		return ""
	}
	steps := proto.Steps()
	if b.Cursor >= len(steps) {
		return ""
	}
	return steps[b.Cursor].Team
}

func (b Board) clone() Board {
	out := b
	out.Sides = make(map[Team]string, len(b.Sides))
	for k, v := range b.Sides {
		out.Sides[k] = v
	}
	out.Picks = cloneLists(b.Picks)
	out.Bans = cloneLists(b.Bans)
	out.Offer = slices.Clone(b.Offer)
	return out
}

func cloneLists(m map[Team][]string) map[Team][]string {
	out := make(map[Team][]string, len(m))
	for k, v := range m {
		out[k] = append([]string{}, v...)
	}
	return out
}

// DerivePhase maps a cursor into a scheduled protocol to its phase.
func DerivePhase(p Protocol, cursor int) Phase {
	for _, ph := range p.Phases {
		if cursor < len(ph.Steps) {
			return ph.Phase
		}
		cursor -= len(ph.Steps)
	}
	return PhaseDone
}

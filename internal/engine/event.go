package engine

import "context"

type EventType string

const (
	EvtPhaseStarted      EventType = "PhaseStarted"
	EvtChampionBanned    EventType = "ChampionBanned"
	EvtChampionPicked    EventType = "ChampionPicked"
	EvtChoiceOffered     EventType = "ChoiceOffered"
	EvtSelectionRejected EventType = "SelectionRejected"
	EvtDraftCompleted    EventType = "DraftCompleted"
)

type Event struct {
	Type     EventType `json:"type"`
	Game     int       `json:"game,omitempty"`
	Mode     Mode      `json:"mode,omitempty"`
	Phase    Phase     `json:"phase,omitempty"`
	Team     Team      `json:"team,omitempty"`
	Side     string    `json:"side,omitempty"`
	Champion string    `json:"champion,omitempty"`
	Options  []string  `json:"options,omitempty"`
	Reason   string    `json:"reason,omitempty"`
	Result   *Result   `json:"result,omitempty"`
}

// Announcer receives every phase change, commit, offer and rejection.
type Announcer interface {
	Announce(Event)
}

type AnnouncerFunc func(Event)

func (f AnnouncerFunc) Announce(e Event) { f(e) }

// Announcers fans one event out to each member in order.
type Announcers []Announcer

func (as Announcers) Announce(e Event) {
	for _, a := range as {
		if a != nil {
			a.Announce(e)
		}
	}
}

// Prompt describes the turn an Input is asked to answer.
type Prompt struct {
	Game    int
	Phase   Phase
	Team    Team
	Side    string
	Action  Action
	Options []string // randomized-offer turns only
	Attempt int
}

// Input supplies one line of free-form text per request. The engine blocks
// on it; returning an error ends the session.
type Input interface {
	Choose(ctx context.Context, p Prompt) (string, error)
}

type InputFunc func(ctx context.Context, p Prompt) (string, error)

func (f InputFunc) Choose(ctx context.Context, p Prompt) (string, error) { return f(ctx, p) }

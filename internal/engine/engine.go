package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DoyleJ11/lol-draft-sim/internal/champion"
	"go.uber.org/zap"
)

var ErrInvalidSelection = errors.New("invalid selection")
var ErrRosterFull = fmt.Errorf("%w: roster full", ErrInvalidSelection)
var ErrDuplicateSelection = fmt.Errorf("%w: already selected by this side", ErrInvalidSelection)
var ErrSeriesExcluded = fmt.Errorf("%w: unavailable due to series exclusion", ErrInvalidSelection)
var ErrOfferMismatch = errors.New("choice not among offered champions")

var ErrInputClosed = errors.New("input closed")
var ErrPoolTooSmall = errors.New("champion pool too small for this draft")
var ErrPoolExhausted = errors.New("not enough champions left to offer")
var ErrGameAlreadyCompleted = errors.New("game already completed")

type Team string

const (
	TeamBlue Team = "blue"
	TeamRed  Team = "red"
)

type Action string

const (
	ActionBan  Action = "ban"
	ActionPick Action = "pick"
)

type Phase string

const (
	PhaseBan1  Phase = "ban1"
	PhasePick1 Phase = "pick1"
	PhaseBan2  Phase = "ban2"
	PhasePick2 Phase = "pick2"
	PhaseOffer Phase = "offer"
	PhaseDone  Phase = "done"
)

// TurnStep is one entry of a protocol schedule. UseLedger makes bans and
// picks consult and feed the series ledger.
type TurnStep struct {
	Team      Team
	Action    Action
	UseLedger bool
}

type Config struct {
	Mode     Mode
	Game     int
	Registry *champion.Registry
	// Ledger is shared by every game of a series. A fearless session without
	// one gets a fresh ledger.
	Ledger    *SeriesLedger
	BlueName  string
	RedName   string
	Input     Input
	Announcer Announcer
	Sampler   Sampler
	Logger    *zap.Logger
}

type Result struct {
	Game  int               `json:"game"`
	Mode  Mode              `json:"mode"`
	Sides map[Team]string   `json:"sides"`
	Picks map[Team][]string `json:"picks"`
	Bans  map[Team][]string `json:"bans"`
}

// Session runs one draft. It is not safe for concurrent use; only the
// registry is shared between sessions.
type Session struct {
	mode     Mode
	game     int
	registry *champion.Registry
	ledger   *SeriesLedger
	rosters  map[Team]*Roster
	bans     map[Team][]string
	pool     *Pool
	input    Input
	announce Announcer
	sampler  Sampler
	logger   *zap.Logger
	done     bool
}

func NewSession(cfg Config) (*Session, error) {
	if cfg.Registry == nil {
		return nil, errors.New("engine: registry is required")
	}
	if cfg.Input == nil {
		return nil, errors.New("engine: input is required")
	}
	if _, ok := ParseMode(string(cfg.Mode)); !ok {
		return nil, fmt.Errorf("engine: unknown mode %q", cfg.Mode)
	}

	s := &Session{
		mode:     cfg.Mode,
		game:     max(cfg.Game, 1),
		registry: cfg.Registry,
		ledger:   cfg.Ledger,
		input:    cfg.Input,
		announce: cfg.Announcer,
		sampler:  cfg.Sampler,
		logger:   cfg.Logger,
		bans:     map[Team][]string{TeamBlue: {}, TeamRed: {}},
	}
	if s.announce == nil {
		s.announce = Announcers{}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.sampler == nil {
		s.sampler = NewRandSampler(nil)
	}
	if s.ledger == nil && s.mode == ModeFearless {
		s.ledger = NewSeriesLedger()
	}
	s.rosters = map[Team]*Roster{
		TeamBlue: NewRoster(TeamBlue, nameOr(cfg.BlueName, "Blue"), s.registry),
		TeamRed:  NewRoster(TeamRed, nameOr(cfg.RedName, "Red"), s.registry),
	}
	if s.mode == ModeRandom {
		s.pool = NewPool(s.registry.Names())
	}

	if have, need := s.available(), s.required(); have < need {
		return nil, fmt.Errorf("%w: %d available, %s needs %d", ErrPoolTooSmall, have, s.mode, need)
	}
	return s, nil
}

// required is the number of distinct champions the mode consumes in the
// worst case, so a draft never starts that could block forever.
func (s *Session) required() int {
	switch s.mode {
	case ModeFearless:
		return len(FearlessOrder.Steps())
	case ModeRandom:
		return 2*RosterSize + OfferSize - 1
	default:
		return RosterSize
	}
}

func (s *Session) available() int {
	if s.mode != ModeFearless {
		return s.registry.Len()
	}
	n := 0
	for _, name := range s.registry.Names() {
		if !s.ledger.IsExcluded(name) {
			n++
		}
	}
	return n
}

func (s *Session) Run(ctx context.Context) (Result, error) {
	if s.done {
		return Result{}, ErrGameAlreadyCompleted
	}
	s.logger.Info("draft started", zap.String("mode", string(s.mode)), zap.Int("game", s.game))

	var err error
	if s.mode == ModeRandom {
		err = s.runOffers(ctx)
	} else {
		err = s.runProtocol(ctx, Protocols[s.mode])
	}
	if err != nil {
		return Result{}, err
	}

	s.done = true
	res := s.Result()
	s.announce.Announce(Event{Type: EvtDraftCompleted, Game: s.game, Mode: s.mode, Phase: PhaseDone, Result: &res})
	s.logger.Info("draft completed",
		zap.String("mode", string(s.mode)),
		zap.Int("game", s.game),
		zap.Strings("blue", res.Picks[TeamBlue]),
		zap.Strings("red", res.Picks[TeamRed]))
	return res, nil
}

func (s *Session) runProtocol(ctx context.Context, proto Protocol) error {
	for _, ph := range proto.Phases {
		s.announce.Announce(Event{Type: EvtPhaseStarted, Game: s.game, Mode: s.mode, Phase: ph.Phase})
		for _, step := range ph.Steps {
			phase := ph.Phase
			prompt := s.prompt(phase, step.Team, step.Action)
			err := s.playTurn(ctx, prompt, func(raw string) (Event, error) {
				if step.Action == ActionBan {
					return s.ban(phase, step, raw)
				}
				return s.pick(phase, step, raw)
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// runOffers plays rounds of blue then red; a full roster sits out.
func (s *Session) runOffers(ctx context.Context) error {
	s.announce.Announce(Event{Type: EvtPhaseStarted, Game: s.game, Mode: s.mode, Phase: PhaseOffer})
	for !s.rosters[TeamBlue].Full() || !s.rosters[TeamRed].Full() {
		for _, team := range []Team{TeamBlue, TeamRed} {
			roster := s.rosters[team]
			if roster.Full() {
				continue
			}

			offer, err := s.pool.Offer(s.sampler)
			if err != nil {
				return err
			}
			evt := s.event(EvtChoiceOffered, PhaseOffer, team, "")
			evt.Options = offer
			s.announce.Announce(evt)

			prompt := s.prompt(PhaseOffer, team, ActionPick)
			prompt.Options = offer
			err = s.playTurn(ctx, prompt, func(raw string) (Event, error) {
				name, ok := matchOffer(offer, raw)
				if !ok {
					return Event{}, fmt.Errorf("%w: %q is not one of %s", ErrOfferMismatch, strings.TrimSpace(raw), strings.Join(offer, ", "))
				}
				if _, err := roster.Commit(name, nil); err != nil {
					return Event{}, err
				}
				s.pool.Remove(name)
				return s.event(EvtChampionPicked, PhaseOffer, team, name), nil
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// playTurn asks for input until apply accepts it. Rejections are announced and
// the same turn is asked again; only input failure or ctx ends the loop.
func (s *Session) playTurn(ctx context.Context, p Prompt, apply func(raw string) (Event, error)) error {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.Attempt = attempt

		raw, err := s.input.Choose(ctx, p)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInputClosed, err)
		}

		evt, err := apply(raw)
		if err != nil {
			s.logger.Debug("selection rejected",
				zap.String("team", string(p.Team)),
				zap.String("phase", string(p.Phase)),
				zap.String("input", raw),
				zap.Error(err))
			rej := s.event(EvtSelectionRejected, p.Phase, p.Team, "")
			rej.Reason = err.Error()
			s.announce.Announce(rej)
			continue
		}

		s.announce.Announce(evt)
		return nil
	}
}

func (s *Session) ban(phase Phase, step TurnStep, raw string) (Event, error) {
	name, err := s.registry.Resolve(raw)
	if err != nil {
		return Event{}, err
	}

	if step.UseLedger {
		if s.ledger.IsExcluded(name) {
			return Event{}, fmt.Errorf("%w: %s already banned or picked", ErrSeriesExcluded, name)
		}
		s.ledger.Exclude(name)
	}

	s.bans[step.Team] = append(s.bans[step.Team], name)
	return s.event(EvtChampionBanned, phase, step.Team, name), nil
}

func (s *Session) pick(phase Phase, step TurnStep, raw string) (Event, error) {
	name, err := s.registry.Resolve(raw)
	if err != nil {
		return Event{}, err
	}

	var ledger *SeriesLedger
	if step.UseLedger {
		ledger = s.ledger
	}
	if _, err := s.rosters[step.Team].Commit(name, ledger); err != nil {
		return Event{}, err
	}
	if ledger != nil {
		ledger.Exclude(name)
	}
	return s.event(EvtChampionPicked, phase, step.Team, name), nil
}

func (s *Session) prompt(phase Phase, team Team, action Action) Prompt {
	return Prompt{Game: s.game, Phase: phase, Team: team, Side: s.rosters[team].Name, Action: action}
}

func (s *Session) event(t EventType, phase Phase, team Team, name string) Event {
	return Event{Type: t, Game: s.game, Mode: s.mode, Phase: phase, Team: team, Side: s.rosters[team].Name, Champion: name}
}

func (s *Session) Result() Result {
	return Result{
		Game: s.game,
		Mode: s.mode,
		Sides: map[Team]string{
			TeamBlue: s.rosters[TeamBlue].Name,
			TeamRed:  s.rosters[TeamRed].Name,
		},
		Picks: map[Team][]string{
			TeamBlue: s.rosters[TeamBlue].Names(),
			TeamRed:  s.rosters[TeamRed].Names(),
		},
		Bans: map[Team][]string{
			TeamBlue: append([]string{}, s.bans[TeamBlue]...),
			TeamRed:  append([]string{}, s.bans[TeamRed]...),
		},
	}
}

func (s *Session) Roster(team Team) *Roster { return s.rosters[team] }

// Pool is nil outside the randomized-offer mode.
func (s *Session) Pool() *Pool { return s.pool }

func (s *Session) Ledger() *SeriesLedger { return s.ledger }

func nameOr(name, fallback string) string {
	if strings.TrimSpace(name) == "" {
		return fallback
	}
	return name
}

package engine

type Mode string

const (
	ModeFearless   Mode = "fearless"
	ModeTournament Mode = "tournament"
	ModeRandom     Mode = "random"
)

func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeFearless, ModeTournament, ModeRandom:
		return Mode(s), true
	default:
		return "", false
	}
}

type PhaseOrder struct {
	Phase Phase
	Steps []TurnStep
}

// Protocol is a fixed schedule of turns. The randomized-offer mode has no
// schedule and is played by rounds instead.
type Protocol struct {
	Mode   Mode
	Phases []PhaseOrder
}

func (p Protocol) Steps() []TurnStep {
	var steps []TurnStep
	for _, ph := range p.Phases {
		steps = append(steps, ph.Steps...)
	}
	return steps
}

func bans(ledger bool, teams ...Team) []TurnStep {
	return steps(ActionBan, ledger, teams)
}

func picks(ledger bool, teams ...Team) []TurnStep {
	return steps(ActionPick, ledger, teams)
}

func steps(action Action, ledger bool, teams []Team) []TurnStep {
	out := make([]TurnStep, len(teams))
	for i, t := range teams {
		out[i] = TurnStep{Team: t, Action: action, UseLedger: ledger}
	}
	return out
}

const (
	blue = TeamBlue
	red  = TeamRed
)

var FearlessOrder = Protocol{
	Mode: ModeFearless,
	Phases: []PhaseOrder{
		{Phase: PhaseBan1, Steps: bans(true, blue, red, red, blue, blue, red)},
		{Phase: PhasePick1, Steps: picks(true, blue, red, red, blue, blue, red)},
		{Phase: PhaseBan2, Steps: bans(true, red, blue, blue, red)},
		{Phase: PhasePick2, Steps: picks(true, red, blue, blue, red)},
	},
}

// TournamentOrder never touches the ledger: a banned champion stays pickable.
var TournamentOrder = Protocol{
	Mode: ModeTournament,
	Phases: []PhaseOrder{
		{Phase: PhaseBan1, Steps: bans(false, blue, red, red, blue, blue, red)},
		{Phase: PhasePick1, Steps: picks(false, blue, red, red, blue, blue, red)},
		{Phase: PhaseBan2, Steps: bans(false, blue, red, blue, red)},
		{Phase: PhasePick2, Steps: picks(false, red, blue, blue, red)},
	},
}

var Protocols = map[Mode]Protocol{
	ModeFearless:   FearlessOrder,
	ModeTournament: TournamentOrder,
}

package engine

import (
	"fmt"
	"slices"

	"github.com/DoyleJ11/lol-draft-sim/internal/champion"
)

const RosterSize = 5

// Roster is one side's picks for a single game, in pick order.
type Roster struct {
	Team  Team
	Name  string
	picks []champion.Champion
	reg   *champion.Registry
}

func NewRoster(team Team, name string, reg *champion.Registry) *Roster {
	return &Roster{Team: team, Name: name, reg: reg}
}

// Commit appends a canonical champion name to the roster. A nil ledger skips
// the series-exclusion check. Nothing changes when an error is returned.
func (r *Roster) Commit(name string, ledger *SeriesLedger) (champion.Champion, error) {
	if r.Full() {
		return champion.Champion{}, fmt.Errorf("%w: %s already has %d champions", ErrRosterFull, r.Name, RosterSize)
	}

	c, ok := r.reg.Get(name)
	if !ok {
		return champion.Champion{}, fmt.Errorf("%w: %q", champion.ErrUnknownChampion, name)
	}

	if r.Has(name) {
		return champion.Champion{}, fmt.Errorf("%w: %s already picked by %s", ErrDuplicateSelection, name, r.Name)
	}

	if ledger != nil && ledger.IsExcluded(name) {
		return champion.Champion{}, fmt.Errorf("%w: %s", ErrSeriesExcluded, name)
	}

	r.picks = append(r.picks, c)
	return c, nil
}

func (r *Roster) Has(name string) bool {
	return slices.ContainsFunc(r.picks, func(c champion.Champion) bool { return c.Name == name })
}

func (r *Roster) Full() bool { return len(r.picks) >= RosterSize }

func (r *Roster) Len() int { return len(r.picks) }

func (r *Roster) Picks() []champion.Champion { return slices.Clone(r.picks) }

func (r *Roster) Names() []string {
	names := make([]string, len(r.picks))
	for i, c := range r.picks {
		names[i] = c.Name
	}
	return names
}

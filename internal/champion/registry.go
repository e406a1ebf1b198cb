package champion

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/multierr"
	"golang.org/x/text/cases"
)

var ErrUnknownChampion = errors.New("unknown champion")
var ErrInvalidDataset = errors.New("invalid champion dataset")

type Champion struct {
	Name  string   `json:"name" yaml:"name"`
	Roles []string `json:"roles" yaml:"roles"`
}

func (c Champion) HasRole(role string) bool {
	return slices.ContainsFunc(c.Roles, func(r string) bool {
		return fold(r) == fold(role)
	})
}

// Registry is the read-only champion pool shared by every draft session.
// Nothing mutates it after NewRegistry returns, so it is safe for concurrent use.
type Registry struct {
	byName map[string]Champion
	index  map[string]string // folded name -> canonical name
	names  []string
}

// NewRegistry validates champs and builds the case-insensitive index.
// Every dataset problem is reported, not only the first one.
func NewRegistry(champs []Champion) (*Registry, error) {
	r := &Registry{
		byName: make(map[string]Champion, len(champs)),
		index:  make(map[string]string, len(champs)),
	}

	var errs error
	for i, c := range champs {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			errs = multierr.Append(errs, fmt.Errorf("entry %d: empty name", i))
			continue
		}
		if len(c.Roles) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("%s: no roles", name))
			continue
		}
		key := fold(name)
		if prev, ok := r.index[key]; ok {
			errs = multierr.Append(errs, fmt.Errorf("%s: duplicate of %s", name, prev))
			continue
		}

		roles := lo.Uniq(c.Roles)
		slices.Sort(roles)
		r.byName[name] = Champion{Name: name, Roles: roles}
		r.index[key] = name
		r.names = append(r.names, name)
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, errs)
	}

	slices.Sort(r.names)
	return r, nil
}

// Resolve maps free-form user text to a canonical champion name.
func (r *Registry) Resolve(raw string) (string, error) {
	name, ok := r.index[fold(raw)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownChampion, strings.TrimSpace(raw))
	}
	return name, nil
}

func (r *Registry) RolesOf(name string) ([]string, error) {
	c, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChampion, name)
	}
	return slices.Clone(c.Roles), nil
}

// Get looks up an exact canonical name.
func (r *Registry) Get(name string) (Champion, bool) {
	c, ok := r.byName[name]
	if !ok {
		return Champion{}, false
	}
	c.Roles = slices.Clone(c.Roles)
	return c, true
}

func (r *Registry) Len() int { return len(r.names) }

// Names returns the canonical names in sorted order.
func (r *Registry) Names() []string { return slices.Clone(r.names) }

func (r *Registry) Champions() []Champion {
	return lo.Map(r.names, func(name string, _ int) Champion {
		c, _ := r.Get(name)
		return c
	})
}

func (r *Registry) WithRole(role string) []Champion {
	return lo.Filter(r.Champions(), func(c Champion, _ int) bool {
		return c.HasRole(role)
	})
}

// cases.Caser is stateful, so a fresh one is built per call.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

package engine

import "slices"

// SeriesLedger records every champion banned or picked during a fearless
// series. It only grows.
type SeriesLedger struct {
	excluded map[string]struct{}
	order    []string
}

func NewSeriesLedger() *SeriesLedger {
	return &SeriesLedger{excluded: map[string]struct{}{}}
}

// Exclude is idempotent.
func (l *SeriesLedger) Exclude(name string) {
	if _, ok := l.excluded[name]; ok {
		return
	}
	l.excluded[name] = struct{}{}
	l.order = append(l.order, name)
}

func (l *SeriesLedger) IsExcluded(name string) bool {
	_, ok := l.excluded[name]
	return ok
}

func (l *SeriesLedger) Len() int { return len(l.order) }

// Excluded lists names in the order they entered the ledger.
func (l *SeriesLedger) Excluded() []string { return slices.Clone(l.order) }

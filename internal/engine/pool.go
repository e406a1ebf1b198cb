package engine

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

const OfferSize = 3

// Sampler draws n distinct names from names without replacement.
type Sampler interface {
	Sample(names []string, n int) []string
}

type randSampler struct {
	rng *rand.Rand
}

// NewRandSampler returns a Sampler backed by rng, or by the global source
// when rng is nil.
func NewRandSampler(rng *rand.Rand) Sampler {
	return randSampler{rng: rng}
}

func (s randSampler) Sample(names []string, n int) []string {
	buf := slices.Clone(names)
	n = min(n, len(buf))
	// Partial Fisher-Yates: the first n slots end up as the sample.
	for i := range n {
		j := i + s.intN(len(buf)-i)
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf[:n]
}

func (s randSampler) intN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	return s.rng.IntN(n)
}

// Pool is the set of champions still available in a randomized-offer draft.
type Pool struct {
	names []string
}

func NewPool(names []string) *Pool {
	return &Pool{names: slices.Clone(names)}
}

func (p *Pool) Len() int { return len(p.names) }

func (p *Pool) Names() []string { return slices.Clone(p.names) }

func (p *Pool) Contains(name string) bool { return slices.Contains(p.names, name) }

func (p *Pool) Remove(name string) bool {
	i := slices.Index(p.names, name)
	if i < 0 {
		return false
	}
	p.names = slices.Delete(p.names, i, i+1)
	return true
}

// Offer asks sampler for OfferSize distinct names still in the pool.
func (p *Pool) Offer(sampler Sampler) ([]string, error) {
	if len(p.names) < OfferSize {
		return nil, fmt.Errorf("%w: %d left, need %d", ErrPoolExhausted, len(p.names), OfferSize)
	}
	offer := sampler.Sample(p.names, OfferSize)

	seen := make(map[string]bool, len(offer))
	for _, name := range offer {
		if seen[name] || !p.Contains(name) {
			return nil, fmt.Errorf("%w: sampler returned %v", ErrPoolExhausted, offer)
		}
		seen[name] = true
	}
	if len(offer) != OfferSize {
		return nil, fmt.Errorf("%w: sampler returned %d names", ErrPoolExhausted, len(offer))
	}
	return offer, nil
}

// matchOffer compares raw against the offered names only, never the registry.
func matchOffer(offer []string, raw string) (string, bool) {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(raw))
	for _, name := range offer {
		if fold.String(name) == want {
			return name, true
		}
	}
	return "", false
}

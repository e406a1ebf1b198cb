package engine

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolOfferIsDistinctAndFromPool(t *testing.T) {
	names := []string{"Garen", "Lux", "Vi", "Zed", "Ahri", "Jinx"}
	p := NewPool(names)
	sampler := NewRandSampler(rand.New(rand.NewPCG(7, 7)))

	for range 50 {
		offer, err := p.Offer(sampler)
		require.NoError(t, err)
		require.Len(t, offer, OfferSize)

		uniq := slices.Clone(offer)
		slices.Sort(uniq)
		assert.Len(t, slices.Compact(uniq), OfferSize)
		for _, name := range offer {
			assert.Contains(t, names, name)
		}
	}
	assert.Equal(t, len(names), p.Len(), "offering does not consume")
}

func TestPoolRemove(t *testing.T) {
	p := NewPool([]string{"Garen", "Lux", "Vi", "Zed"})

	assert.True(t, p.Remove("Lux"))
	assert.False(t, p.Remove("Lux"))
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, []string{"Garen", "Vi", "Zed"}, p.Names())

	p.Remove("Zed")
	_, err := p.Offer(NewRandSampler(nil))
	assert.ErrorIs(t, err, ErrPoolExhausted)
}

func TestPoolRejectsBadSampler(t *testing.T) {
	p := NewPool([]string{"Garen", "Lux", "Vi", "Zed"})

	_, err := p.Offer(&fixedSampler{offers: [][]string{{"Garen", "Garen", "Vi"}}})
	assert.ErrorIs(t, err, ErrPoolExhausted)

	_, err = p.Offer(&fixedSampler{offers: [][]string{{"Garen", "Lux", "Teemo"}}})
	assert.ErrorIs(t, err, ErrPoolExhausted)
}

func TestMatchOffer(t *testing.T) {
	offer := []string{"Garen", "Lux", "Miss Fortune"}

	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"lux", "Lux", true},
		{"  GAREN ", "Garen", true},
		{"miss fortune", "Miss Fortune", true},
		{"vi", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := matchOffer(offer, tc.raw)
		assert.Equal(t, tc.ok, ok, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

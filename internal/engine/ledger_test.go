package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeriesLedger(t *testing.T) {
	l := NewSeriesLedger()
	assert.False(t, l.IsExcluded("Zed"))

	l.Exclude("Zed")
	l.Exclude("Ahri")
	l.Exclude("Zed")

	assert.True(t, l.IsExcluded("Zed"))
	assert.True(t, l.IsExcluded("Ahri"))
	assert.False(t, l.IsExcluded("zed"), "ledger holds canonical names")
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []string{"Zed", "Ahri"}, l.Excluded())

	got := l.Excluded()
	got[0] = "Lux"
	assert.False(t, l.IsExcluded("Lux"))
}

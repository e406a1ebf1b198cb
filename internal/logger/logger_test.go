package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	cases := []struct {
		level, format string
		enabled       zap.AtomicLevel
	}{
		{"debug", "console", zap.NewAtomicLevelAt(zap.DebugLevel)},
		{"info", "json", zap.NewAtomicLevelAt(zap.InfoLevel)},
		{"WARN", "", zap.NewAtomicLevelAt(zap.WarnLevel)},
	}
	for _, tc := range cases {
		l, err := New(tc.level, tc.format)
		require.NoError(t, err, tc.level)
		assert.True(t, l.Core().Enabled(tc.enabled.Level()))
		assert.False(t, l.Core().Enabled(tc.enabled.Level()-1))
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New("loud", "console")
	assert.Error(t, err)

	_, err = New("info", "xml")
	assert.Error(t, err)
}

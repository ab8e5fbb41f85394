// SPDX-License-Identifier: MIT
package logging_test

import (
	"testing"

	"github.com/katalvlaran/qmkp/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]zapcore.Level{
		"":       zapcore.InfoLevel,
		"debug":  zapcore.DebugLevel,
		" INFO ": zapcore.InfoLevel,
		"warn":   zapcore.WarnLevel,
		"Error":  zapcore.ErrorLevel,
	}
	for in, want := range tests {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	require.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestNew(t *testing.T) {
	t.Parallel()

	l, err := logging.New("warn", false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = logging.New("debug", true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	_, err = logging.New("verbose", true)
	require.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestOrNop(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, logging.OrNop(nil))
	l, err := logging.New("info", false)
	require.NoError(t, err)
	assert.Same(t, l, logging.OrNop(l))
}

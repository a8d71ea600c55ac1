package diagnostics

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/go-drift/memodemo/pkg/core"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"debug", zapcore.DebugLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{" warn ", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_ConsoleFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Level: "warn", Output: &buf})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", zap.String("component", "Card"))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, `"component": "Card"`)
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Info("Cardコンポーネントレンダリング", zap.String("title", "カードタイトル"))

	assert.Contains(t, buf.String(), `"message":"Cardコンポーネントレンダリング"`)
	assert.Contains(t, buf.String(), `"title":"カードタイトル"`)
}

func TestNewLogger_Errors(t *testing.T) {
	_, err := NewLogger(Config{Level: "loud"})
	assert.Error(t, err)

	_, err = NewLogger(Config{Format: "xml"})
	assert.Error(t, err)
}

func TestReplaceGlobals(t *testing.T) {
	zapCore, logs := observer.New(zapcore.InfoLevel)
	restore := ReplaceGlobals(zap.New(zapCore))

	L().Info("through global")
	restore()
	L().Info("after restore")

	assert.Equal(t, 1, logs.FilterMessage("through global").Len())
	assert.Zero(t, logs.FilterMessage("after restore").Len())
}

// probe records the logger FromContext resolves during build.
type probe struct {
	core.StatelessBase
	got **zap.Logger
}

func (p probe) Build(ctx core.BuildContext) core.Widget {
	*p.got = FromContext(ctx)
	return nil
}

func TestFromContext(t *testing.T) {
	scoped := zap.NewNop()
	var got *zap.Logger

	core.MountRoot(Scope{Logger: scoped, Child: probe{got: &got}}, core.NewBuildOwner())
	assert.Same(t, scoped, got)

	got = nil
	core.MountRoot(probe{got: &got}, core.NewBuildOwner())
	assert.Same(t, zap.L(), got)

	assert.Same(t, zap.L(), FromContext(nil))
}

func TestScope_UpdateShouldNotify(t *testing.T) {
	a, b := zap.NewNop(), zap.NewNop()

	assert.False(t, Scope{Logger: a}.UpdateShouldNotify(Scope{Logger: a}))
	assert.True(t, Scope{Logger: b}.UpdateShouldNotify(Scope{Logger: a}))
}

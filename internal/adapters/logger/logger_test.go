package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.revet.dev/revet/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated
// testing. It also sets NO_COLOR=1 to ensure deterministic output without
// ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{
			name:       "simple message",
			msg:        "some message",
			goldenName: "info_basic",
		},
		{
			name:       "empty message",
			msg:        "",
			goldenName: "info_empty",
		},
		{
			name:       "multiline message",
			msg:        "line1\nline2",
			goldenName: "info_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Info(tt.msg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("some warning")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Debug_SuppressedAtDefaultLevel(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Debug("not visible")

	assert.Empty(t, buf.String())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 30: cannot unmarshal"),
			goldenName: "error_multiline",
		},
		{
			name: "two level chain",
			err: zerr.Wrap(
				errors.New("underlying cause"),
				"wrapped message",
			),
			goldenName: "error_chain_two",
		},
		{
			name: "three level chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("connection reset"),
					"failed to open repository",
				),
				"failed to refresh project",
			),
			goldenName: "error_chain_three",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_StdlibChain(t *testing.T) {
	// fmt.Errorf chains do not expose per-link messages, so the full text
	// of the outermost error is printed as-is.
	inner := errors.New("connection refused")
	outer := fmt.Errorf("failed to reach index: %w", inner)

	lg, buf := newTestLogger(t)
	lg.Error(outer)

	assert.Contains(t, buf.String(), "failed to reach index: connection refused")
	assert.NotContains(t, buf.String(), "caused by")
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Info("structured message")

	require.Contains(t, buf.String(), `"msg":"structured message"`)
	require.Contains(t, buf.String(), `"level":"INFO"`)
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	lg, _ := newTestLogger(t)

	// Must not panic; output falls back to stderr.
	lg.SetOutput(nil)
}

package logger_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebind/internal/adapters/logger"
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	originalStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = originalStderr }()

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	require.NoError(t, w.Close())
	output := <-done
	require.NoError(t, r.Close())
	return output
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l ports.Logger)
		want  string
		level string
	}{
		{name: "info", log: func(l ports.Logger) { l.Info("some message") }, want: "some message", level: "INFO"},
		{name: "warn", log: func(l ports.Logger) { l.Warn("some warning") }, want: "some warning", level: "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureStderr(t, func() {
				tt.log(logger.New())
			})
			assert.Contains(t, output, tt.want)
			assert.Contains(t, output, tt.level)
		})
	}
}

func TestLogger_Error(t *testing.T) {
	output := captureStderr(t, func() {
		logger.New().Error(os.ErrPermission)
	})

	assert.Contains(t, output, "permission denied")
	assert.Contains(t, output, "ERROR")
}

func TestLogger_ErrorMetadata(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithOutput(&buf, domain.LogLevelInfo)

	err := zerr.With(zerr.Wrap(errors.New("eof"), "failed to read manifest"), "path", "universe.yaml")
	l.Error(err)

	out := buf.String()
	assert.Contains(t, out, "failed to read manifest")
	assert.Contains(t, out, "path=universe.yaml")
}

func TestLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	logger.NewWithOutput(&buf, domain.LogLevelInfo).Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithOutput(&buf, domain.LogLevelWarn)

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.SetLevel(domain.LogLevelInfo)
	l.Info("visible")
	assert.True(t, strings.Contains(buf.String(), "visible"))
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	l := logger.NewWithOutput(&first, domain.LogLevelInfo)

	l.SetOutput(&second)
	l.Warn("redirected")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "redirected")
}

func TestNew_LevelFromEnv(t *testing.T) {
	t.Setenv(logger.LevelEnv, "error")

	output := captureStderr(t, func() {
		l := logger.New()
		l.Warn("suppressed")
		l.Error(errors.New("shown"))
	})

	assert.NotContains(t, output, "suppressed")
	assert.Contains(t, output, "shown")
}

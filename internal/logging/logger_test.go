package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (r *recordingLogger) Debug(format string, _ ...any) { r.lines = append(r.lines, "debug:"+format) }
func (r *recordingLogger) Info(format string, _ ...any)  { r.lines = append(r.lines, "info:"+format) }
func (r *recordingLogger) Warn(format string, _ ...any)  { r.lines = append(r.lines, "warn:"+format) }
func (r *recordingLogger) Error(format string, _ ...any) { r.lines = append(r.lines, "error:"+format) }

func TestOrNopHandlesTypedNilPointers(t *testing.T) {
	var rec *recordingLogger
	var logger Logger = rec
	require.True(t, IsNil(logger))

	safe := OrNop(logger)
	require.False(t, IsNil(safe))
	safe.Info("hello %s", "world")
}

func TestComponentLoggerFollowsConfigure(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewComponentLogger("validator")

	require.NoError(t, Configure("info", buf))
	t.Cleanup(func() { _ = Configure("", nil) })

	logger.Debug("hidden %d", 1)
	logger.Info("hello %s", "world")

	out := buf.String()
	require.Contains(t, out, "hello world")
	require.Contains(t, out, "component=validator")
	require.NotContains(t, out, "hidden")
}

func TestConfigureRejectsUnknownLevel(t *testing.T) {
	require.ErrorContains(t, Configure("verbose", nil), `unknown log level "verbose"`)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"INFO":    logrus.InfoLevel,
		"warning": logrus.WarnLevel,
		" warn ":  logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
}

func TestMultiFlattensAndSkipsNil(t *testing.T) {
	require.IsType(t, discard{}, Multi())

	a := &recordingLogger{}
	require.Same(t, a, Multi(nil, a))

	b := &recordingLogger{}
	var typedNil *recordingLogger
	logger := Multi(Multi(a, typedNil), b)
	logger.Warn("careful")
	logger.Error("broken")

	require.Equal(t, []string{"warn:careful", "error:broken"}, a.lines)
	require.Equal(t, []string{"warn:careful", "error:broken"}, b.lines)

	c := &recordingLogger{}
	require.Len(t, Multi(logger, c), 3)
}

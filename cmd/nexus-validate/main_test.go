package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romiluz13/nexus/internal/orchestration"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunDemo(t *testing.T) {
	code, out, errOut := runCLI(t)
	require.Equal(t, exitOK, code, errOut)

	assert.True(t, strings.HasPrefix(out, "NEXUS Orchestration Validator\n"+strings.Repeat("=", 66)+"\n"))
	assert.Contains(t, out, "This script validates if Claude followed orchestration guidelines.\nIn production, it would analyze chat history from Claude Code.\n")
	assert.Contains(t, out, "Example validation (demo mode):")
	assert.Contains(t, out, "Example with violations (demo mode):")

	assert.Contains(t, out, "📊 ADHERENCE SCORE: 75/100 (75%)")
	assert.Contains(t, out, "🎓 GRADE: B - Good orchestration - Minor improvements needed")
	assert.Contains(t, out, "📊 ADHERENCE SCORE: 25/100 (25%)")
	assert.Contains(t, out, "🎓 GRADE: F - Orchestration ignored - Violating core principles")
	assert.Contains(t, out, "   2. Complex task detected but TodoWrite not used for planning")

	assert.Contains(t, out, "   ✅ Protocol Read: True\n")
	assert.Contains(t, out, "   ❌ Decision Tree: False\n")
	assert.True(t, strings.HasSuffix(out, "💡 To use with real chat history:\n   nexus-validate <path-to-history.txt>\n"))
	assert.NotContains(t, out, "\x1b[")
}

func TestDemoTranscriptScores(t *testing.T) {
	analyzer := orchestration.NewAnalyzer()

	good := analyzer.Analyze(demoGoodHistory)
	require.Equal(t, 75, good.AdherenceScore)
	require.Equal(t, []string{"No evidence of decision tree evaluation"}, good.Violations)
	planning, _ := good.Detail(orchestration.CheckPlanningUsed)
	require.Equal(t, orchestration.NotApplicable(orchestration.ReasonSimpleTask), planning)

	poor := analyzer.Analyze(demoPoorHistory)
	require.Equal(t, 25, poor.AdherenceScore)
	require.Equal(t, []string{
		"Orchestration protocol not checked early",
		"Complex task detected but TodoWrite not used for planning",
		"No evidence of decision tree evaluation",
	}, poor.Violations)
}

func TestRunDebugLogging(t *testing.T) {
	code, out, errOut := runCLI(t, "--log-level", "debug")
	require.Equal(t, exitOK, code, errOut)
	require.NotContains(t, out, "component=")

	require.Contains(t, errOut, "component=orchestration")
	require.Contains(t, errOut, "check decision_tree failed: No evidence of decision tree evaluation")
	require.Contains(t, errOut, "check parallel_execution skipped: single task")
	require.Contains(t, errOut, "scored 2 demo transcripts")
}

func TestRunDefaultLevelKeepsStderrQuiet(t *testing.T) {
	code, _, errOut := runCLI(t)
	require.Equal(t, exitOK, code)
	require.Empty(t, errOut)
}

func TestRunRejectsTranscriptPath(t *testing.T) {
	code, out, errOut := runCLI(t, "history.txt")
	require.Equal(t, exitUsage, code)
	require.Empty(t, out)
	require.Contains(t, errOut, `reading a transcript from "history.txt" is not supported yet`)
}

func TestRunTooManyArgs(t *testing.T) {
	code, _, errOut := runCLI(t, "a.txt", "b.txt")
	require.Equal(t, exitError, code)
	require.Contains(t, errOut, "accepts at most 1 arg(s)")
}

func TestRunInvalidColor(t *testing.T) {
	code, _, errOut := runCLI(t, "--color", "rainbow")
	require.Equal(t, exitUsage, code)
	require.Contains(t, errOut, `invalid color mode "rainbow"`)
}

func TestRunUnknownFlag(t *testing.T) {
	code, _, errOut := runCLI(t, "--verbose")
	require.Equal(t, exitUsage, code)
	require.Contains(t, errOut, "unknown flag: --verbose")
}

func TestRunColorAlways(t *testing.T) {
	code, out, _ := runCLI(t, "--color", "always")
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "\x1b[")
}

func TestRunCustomRuleset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("decision:\n  indicators: [\"checking orchestration\"]\n"), 0o600))

	code, out, errOut := runCLI(t, "--rules", path, "--log-level", "info")
	require.Equal(t, exitOK, code, errOut)
	require.Contains(t, out, "📊 ADHERENCE SCORE: 100/100 (100%)")
	require.Contains(t, out, "✅ NO VIOLATIONS - Perfect orchestration!")
	require.Contains(t, errOut, "using ruleset "+path)
}

func TestRunInvalidRuleset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("protocol:\n  window: -1\n"), 0o600))

	code, out, errOut := runCLI(t, "--rules", path)
	require.Equal(t, exitError, code)
	require.Empty(t, out)
	require.Contains(t, errOut, "load ruleset")
	require.Contains(t, errOut, "protocol.window must be positive")
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nexus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: always\n"), 0o600))

	code, out, _ := runCLI(t, "--config", path)
	require.Equal(t, exitOK, code)
	require.Contains(t, out, "\x1b[")
}

func TestRunVersion(t *testing.T) {
	code, out, _ := runCLI(t, "--version")
	require.Equal(t, exitOK, code)
	require.Equal(t, "nexus-validate "+appVersion()+"\n", out)
}

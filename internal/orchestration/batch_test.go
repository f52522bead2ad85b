package orchestration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeAllPreservesOrder(t *testing.T) {
	transcripts := []string{
		"",
		"CLAUDE.md checking complexity",
		"Build it",
		"CLAUDE.md decision tree, build with TodoWrite",
	}

	analyzer := NewAnalyzer()
	results, err := AnalyzeAll(context.Background(), analyzer, transcripts)
	require.NoError(t, err)
	require.Len(t, results, len(transcripts))

	for i, transcript := range transcripts {
		require.Equal(t, analyzer.Analyze(transcript), results[i], "transcript %d", i)
	}
	require.Equal(t, 100, results[3].AdherenceScore)
}

func TestAnalyzeAllNilAnalyzerUsesDefaults(t *testing.T) {
	results, err := AnalyzeAll(context.Background(), nil, []string{""})
	require.NoError(t, err)
	require.Equal(t, 50, results[0].AdherenceScore)
}

func TestAnalyzeAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := AnalyzeAll(ctx, NewAnalyzer(), []string{"a", "b"})
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, results)
}

package orchestration

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// AnalyzeAll scores several transcripts concurrently. Results keep the input
// order. It only fails when ctx is cancelled.
func AnalyzeAll(ctx context.Context, analyzer *Analyzer, transcripts []string) ([]ScoreResult, error) {
	if analyzer == nil {
		analyzer = NewAnalyzer()
	}
	results := make([]ScoreResult, len(transcripts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, transcript := range transcripts {
		i, transcript := i, transcript
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = analyzer.AnalyzeContext(gctx, transcript)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

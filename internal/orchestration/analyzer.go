// Package orchestration scores assistant transcripts against the NEXUS
// orchestration guidelines.
//
// Four keyword checks are run, each worth CheckPoints. A check whose
// precondition does not hold (no complex task, at most one tool call) is
// skipped and still earns its points. The sum is mapped to a letter grade.
package orchestration

import (
	"context"

	"github.com/romiluz13/nexus/internal/logging"
	"github.com/romiluz13/nexus/internal/observability"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Analyzer runs a fixed list of checks. It holds no mutable state and is
// safe for concurrent use.
type Analyzer struct {
	checks []Check
	tracer trace.Tracer
	logger logging.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithRuleset replaces the built-in indicator phrases.
func WithRuleset(rules *Ruleset) Option {
	return func(a *Analyzer) {
		if rules != nil {
			a.checks = DefaultChecks(rules)
		}
	}
}

// withChecks replaces the check list entirely.
func withChecks(checks ...Check) Option {
	return func(a *Analyzer) {
		a.checks = checks
	}
}

// WithTracer sets the tracer used by AnalyzeContext.
func WithTracer(tracer trace.Tracer) Option {
	return func(a *Analyzer) {
		if tracer != nil {
			a.tracer = tracer
		}
	}
}

// WithLogger adds a logger that receives a debug line per failed or skipped
// check. Repeated options fan out to every logger given.
func WithLogger(logger logging.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logging.Multi(a.logger, logger)
	}
}

// NewAnalyzer builds an analyzer with the default checks.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		checks: DefaultChecks(nil),
		tracer: observability.Tracer("orchestration"),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = logging.OrNop(a.logger)
	return a
}

// Analyze scores a transcript. It never fails; a transcript with no matches
// simply collects every violation.
func (a *Analyzer) Analyze(transcript string) ScoreResult {
	t := NewTranscript(transcript)

	result := ScoreResult{
		MaxScore:        MaxScore,
		Violations:      []string{},
		Recommendations: []string{},
		Details:         make([]CheckDetail, 0, len(a.checks)),
	}

	for _, check := range a.checks {
		finding := check.Evaluate(t)
		switch {
		case !finding.Outcome.Applicable():
			a.logger.Debug("check %s skipped: %s", check.Name(), finding.Outcome.Reason())
		case !finding.Outcome.Passed():
			a.logger.Debug("check %s failed: %s", check.Name(), finding.Violation)
		}
		if finding.Awarded() {
			result.AdherenceScore += CheckPoints
		} else {
			if finding.Violation != "" {
				result.Violations = append(result.Violations, finding.Violation)
			}
			if finding.Recommendation != "" {
				result.Recommendations = append(result.Recommendations, finding.Recommendation)
			}
		}
		result.Details = append(result.Details, CheckDetail{Name: check.Name(), Outcome: finding.Outcome})
	}

	result.Grade = GradeFor(result.AdherenceScore)
	a.logger.Debug("scored %d/%d, grade %s", result.AdherenceScore, result.MaxScore, result.Grade.Letter)
	return result
}

// AnalyzeContext is Analyze wrapped in a tracing span.
func (a *Analyzer) AnalyzeContext(ctx context.Context, transcript string) ScoreResult {
	_, span := a.tracer.Start(ctx, "orchestration.analyze",
		trace.WithAttributes(attribute.Int("orchestration.transcript_bytes", len(transcript))),
	)
	defer span.End()

	result := a.Analyze(transcript)
	span.SetAttributes(
		attribute.Int("orchestration.score", result.AdherenceScore),
		attribute.String("orchestration.grade", result.Grade.Letter),
		attribute.Int("orchestration.violations", len(result.Violations)),
	)
	return result
}

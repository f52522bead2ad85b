package orchestration

// MaxScore is the best attainable adherence score.
const MaxScore = 100

// CheckPoints is the weight of every check. There is no partial credit.
const CheckPoints = 25

// CheckName identifies one of the adherence checks.
type CheckName string

const (
	CheckProtocolRead      CheckName = "protocol_read"
	CheckPlanningUsed      CheckName = "planning_used"
	CheckParallelExecution CheckName = "parallel_execution"
	CheckDecisionTree      CheckName = "decision_tree"
)

var checkLabels = map[CheckName]string{
	CheckProtocolRead:      "Protocol Read",
	CheckPlanningUsed:      "Planning Used",
	CheckParallelExecution: "Parallel Execution",
	CheckDecisionTree:      "Decision Tree",
}

// Label returns the display form of the check name ("Protocol Read").
func (n CheckName) Label() string {
	if label, ok := checkLabels[n]; ok {
		return label
	}
	return string(n)
}

// Reasons a check may be skipped.
const (
	ReasonSimpleTask = "simple task"
	ReasonSingleTask = "single task"
)

// Outcome is the per-check detail value. It is either an evaluated boolean
// or a not-applicable marker carrying the reason the check was skipped.
type Outcome struct {
	applicable bool
	passed     bool
	reason     string
}

// Evaluated returns an outcome for a check that ran.
func Evaluated(passed bool) Outcome {
	return Outcome{applicable: true, passed: passed}
}

// NotApplicable returns an outcome for a check whose precondition did not hold.
func NotApplicable(reason string) Outcome {
	return Outcome{reason: reason}
}

// Applicable reports whether the check actually ran.
func (o Outcome) Applicable() bool { return o.applicable }

// Passed reports the evaluated result. It is false for not-applicable outcomes.
func (o Outcome) Passed() bool { return o.applicable && o.passed }

// Reason returns the skip reason of a not-applicable outcome.
func (o Outcome) Reason() string { return o.reason }

// Affirmative reports whether the outcome should be shown as a success.
// Only an evaluated pass counts; skipped checks are shown as not satisfied.
func (o Outcome) Affirmative() bool { return o.Passed() }

// String renders the outcome for report details: True, False or
// "N/A (reason)".
func (o Outcome) String() string {
	switch {
	case !o.applicable:
		return "N/A (" + o.reason + ")"
	case o.passed:
		return "True"
	default:
		return "False"
	}
}

// CheckDetail pairs a check with its outcome.
type CheckDetail struct {
	Name    CheckName
	Outcome Outcome
}

// Grade is a letter grade with its fixed description.
type Grade struct {
	Letter      string
	Description string
}

// ScoreResult is the outcome of analysing one transcript.
type ScoreResult struct {
	AdherenceScore  int
	MaxScore        int
	Violations      []string
	Recommendations []string
	Grade           Grade
	// Details holds one entry per check in evaluation order.
	Details []CheckDetail
}

// Detail looks up the outcome of a single check.
func (r ScoreResult) Detail(name CheckName) (Outcome, bool) {
	for _, d := range r.Details {
		if d.Name == name {
			return d.Outcome, true
		}
	}
	return Outcome{}, false
}

// Percent returns the score as a percentage of MaxScore.
func (r ScoreResult) Percent() int {
	if r.MaxScore <= 0 {
		return 0
	}
	return r.AdherenceScore * 100 / r.MaxScore
}

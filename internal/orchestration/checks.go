package orchestration

// Check is one rule-based adherence check.
type Check interface {
	Name() CheckName
	Evaluate(t *Transcript) Finding
}

// Finding is the result of a single check. Violation and Recommendation are
// set only when the check fails.
type Finding struct {
	Outcome        Outcome
	Violation      string
	Recommendation string
}

// Awarded reports whether the check earns its points. Skipped checks earn
// them too.
func (f Finding) Awarded() bool {
	return !f.Outcome.Applicable() || f.Outcome.Passed()
}

func pass() Finding { return Finding{Outcome: Evaluated(true)} }

func skip(reason string) Finding { return Finding{Outcome: NotApplicable(reason)} }

func fail(violation, recommendation string) Finding {
	return Finding{
		Outcome:        Evaluated(false),
		Violation:      violation,
		Recommendation: recommendation,
	}
}

// DefaultChecks returns the four checks in report order.
func DefaultChecks(rules *Ruleset) []Check {
	if rules == nil {
		rules = DefaultRuleset()
	}
	return []Check{
		&ProtocolReadCheck{Rules: rules.Protocol},
		&PlanningCheck{Rules: rules.Planning},
		&ParallelExecutionCheck{Rules: rules.Parallel},
		&DecisionTreeCheck{Rules: rules.Decision},
	}
}

// ProtocolReadCheck looks for evidence that the orchestration protocol was
// consulted near the start of the session.
type ProtocolReadCheck struct {
	Rules ProtocolRules
}

func (c *ProtocolReadCheck) Name() CheckName { return CheckProtocolRead }

func (c *ProtocolReadCheck) Evaluate(t *Transcript) Finding {
	if containsAnyFold(t.Head(c.Rules.Window), c.Rules.Indicators) {
		return pass()
	}
	return fail(
		"Orchestration protocol not checked early",
		"Read CLAUDE.md orchestration protocol before starting work",
	)
}

// PlanningCheck requires a planning marker whenever the transcript describes
// a complex task.
type PlanningCheck struct {
	Rules PlanningRules
}

func (c *PlanningCheck) Name() CheckName { return CheckPlanningUsed }

func (c *PlanningCheck) Evaluate(t *Transcript) Finding {
	if !t.ContainsAny(c.Rules.ComplexityIndicators) {
		return skip(ReasonSimpleTask)
	}
	if t.ContainsAny(c.Rules.Markers) {
		return pass()
	}
	return fail(
		"Complex task detected but TodoWrite not used for planning",
		"Use TodoWrite to plan complex tasks before implementing",
	)
}

// ParallelExecutionCheck requires parallelism language once more than
// Threshold tool invocations appear.
//
// Only the text is inspected, so tool calls batched into one message cannot
// be told apart from calls spread across messages.
type ParallelExecutionCheck struct {
	Rules ParallelRules
}

func (c *ParallelExecutionCheck) Name() CheckName { return CheckParallelExecution }

func (c *ParallelExecutionCheck) Evaluate(t *Transcript) Finding {
	if t.CountAll(c.Rules.ToolMarkers) <= c.Rules.Threshold {
		return skip(ReasonSingleTask)
	}
	if t.ContainsAny(c.Rules.Indicators) {
		return pass()
	}
	return fail(
		"Multiple independent tasks executed sequentially",
		"Launch parallel agents in single message with multiple tool calls",
	)
}

// DecisionTreeCheck looks for signs that the complexity decision tree was
// walked before acting.
type DecisionTreeCheck struct {
	Rules DecisionRules
}

func (c *DecisionTreeCheck) Name() CheckName { return CheckDecisionTree }

func (c *DecisionTreeCheck) Evaluate(t *Transcript) Finding {
	if t.ContainsAny(c.Rules.Indicators) {
		return pass()
	}
	return fail(
		"No evidence of decision tree evaluation",
		"Follow complexity assessment decision tree before implementing",
	)
}

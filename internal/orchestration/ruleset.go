package orchestration

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed ruleset.yaml
var defaultRulesetYAML []byte

// Ruleset holds the indicator phrases used by the checks. A loaded ruleset
// is treated as read-only; checks keep references to its slices.
type Ruleset struct {
	Protocol ProtocolRules `yaml:"protocol"`
	Planning PlanningRules `yaml:"planning"`
	Parallel ParallelRules `yaml:"parallel"`
	Decision DecisionRules `yaml:"decision"`
}

// ProtocolRules configures the protocol-read check.
type ProtocolRules struct {
	// Window is the number of leading characters searched.
	Window     int      `yaml:"window"`
	Indicators []string `yaml:"indicators"`
}

// PlanningRules configures the planning-usage check.
type PlanningRules struct {
	ComplexityIndicators []string `yaml:"complexity_indicators"`
	Markers              []string `yaml:"markers"`
}

// ParallelRules configures the parallel-execution check.
type ParallelRules struct {
	ToolMarkers []string `yaml:"tool_markers"`
	// Threshold is the tool-marker count at or below which the check is skipped.
	Threshold  int      `yaml:"threshold"`
	Indicators []string `yaml:"indicators"`
}

// DecisionRules configures the decision-tree check.
type DecisionRules struct {
	Indicators []string `yaml:"indicators"`
}

var (
	defaultRulesetOnce sync.Once
	defaultRuleset     *Ruleset
)

// DefaultRuleset returns the built-in ruleset. It is parsed once per process.
func DefaultRuleset() *Ruleset {
	defaultRulesetOnce.Do(func() {
		rs, err := ParseRuleset(defaultRulesetYAML, nil)
		if err != nil {
			panic(fmt.Sprintf("orchestration: built-in ruleset is invalid: %v", err))
		}
		defaultRuleset = rs
	})
	return defaultRuleset
}

// LoadRuleset reads a ruleset from a YAML file. Sections left out of the
// file keep the built-in values.
func LoadRuleset(path string) (*Ruleset, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("ruleset path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ruleset: %w", err)
	}
	rs, err := ParseRuleset(data, DefaultRuleset())
	if err != nil {
		return nil, fmt.Errorf("ruleset %s: %w", path, err)
	}
	return rs, nil
}

// ParseRuleset decodes YAML on top of base (which may be nil) and validates
// the result. Unknown keys are rejected. base is never modified.
func ParseRuleset(data []byte, base *Ruleset) (*Ruleset, error) {
	var rs Ruleset
	if base != nil {
		rs = base.clone()
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&rs); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode ruleset: %w", err)
	}
	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return &rs, nil
}

// Validate checks that every list is populated and the numeric knobs are sane.
func (r *Ruleset) Validate() error {
	if r == nil {
		return fmt.Errorf("ruleset is nil")
	}
	var problems []string
	if r.Protocol.Window <= 0 {
		problems = append(problems, "protocol.window must be positive")
	}
	if r.Parallel.Threshold < 0 {
		problems = append(problems, "parallel.threshold must not be negative")
	}
	lists := []struct {
		field  string
		values []string
	}{
		{"protocol.indicators", r.Protocol.Indicators},
		{"planning.complexity_indicators", r.Planning.ComplexityIndicators},
		{"planning.markers", r.Planning.Markers},
		{"parallel.tool_markers", r.Parallel.ToolMarkers},
		{"parallel.indicators", r.Parallel.Indicators},
		{"decision.indicators", r.Decision.Indicators},
	}
	for _, l := range lists {
		if len(l.values) == 0 {
			problems = append(problems, l.field+" is empty")
			continue
		}
		for _, v := range l.values {
			if strings.TrimSpace(v) == "" {
				problems = append(problems, l.field+" contains a blank entry")
				break
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid ruleset: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (r *Ruleset) clone() Ruleset {
	return Ruleset{
		Protocol: ProtocolRules{
			Window:     r.Protocol.Window,
			Indicators: cloneStrings(r.Protocol.Indicators),
		},
		Planning: PlanningRules{
			ComplexityIndicators: cloneStrings(r.Planning.ComplexityIndicators),
			Markers:              cloneStrings(r.Planning.Markers),
		},
		Parallel: ParallelRules{
			ToolMarkers: cloneStrings(r.Parallel.ToolMarkers),
			Threshold:   r.Parallel.Threshold,
			Indicators:  cloneStrings(r.Parallel.Indicators),
		},
		Decision: DecisionRules{
			Indicators: cloneStrings(r.Decision.Indicators),
		},
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Package report renders orchestration scores as human-readable text.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/romiluz13/nexus/internal/orchestration"
)

const (
	Title = "NEXUS ORCHESTRATION VALIDATION REPORT"

	// RuleWidth is the width of the closing rule and of the banner box.
	RuleWidth = 66

	GlyphPass = "✅"
	GlyphFail = "❌"
)

// Formatter turns a ScoreResult into the text report. The zero value is not
// usable; call NewFormatter.
type Formatter struct {
	heading *color.Color
	good    *color.Color
	warn    *color.Color
	bad     *color.Color
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithColor toggles ANSI colouring. Colour is off by default so the plain
// rendering stays byte-stable.
func WithColor(enabled bool) Option {
	return func(f *Formatter) {
		for _, c := range []*color.Color{f.heading, f.good, f.warn, f.bad} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// NewFormatter builds a formatter.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		heading: color.New(color.Bold),
		good:    color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		bad:     color.New(color.FgRed),
	}
	WithColor(false)(f)
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format renders the report. The output has no trailing newline.
func (f *Formatter) Format(result orchestration.ScoreResult) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(Banner())
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("📊 %s %d/%d (%d%%)\n\n",
		f.heading.Sprint("ADHERENCE SCORE:"),
		result.AdherenceScore, result.MaxScore, result.Percent()))
	b.WriteString(fmt.Sprintf("🎓 %s %s - %s\n\n",
		f.heading.Sprint("GRADE:"),
		f.gradeColor(result.Grade.Letter).Sprint(result.Grade.Letter),
		result.Grade.Description))

	if len(result.Violations) > 0 {
		b.WriteString(GlyphFail + " " + f.heading.Sprint("VIOLATIONS:") + "\n")
		writeNumbered(&b, result.Violations)
		b.WriteString("\n")
	} else {
		b.WriteString(f.good.Sprint(GlyphPass+" NO VIOLATIONS - Perfect orchestration!") + "\n\n")
	}

	if len(result.Recommendations) > 0 {
		b.WriteString("💡 " + f.heading.Sprint("RECOMMENDATIONS:") + "\n")
		writeNumbered(&b, result.Recommendations)
		b.WriteString("\n")
	}

	b.WriteString("📋 " + f.heading.Sprint("DETAILS:") + "\n")
	for _, d := range result.Details {
		glyph, c := GlyphFail, f.bad
		if d.Outcome.Affirmative() {
			glyph, c = GlyphPass, f.good
		}
		b.WriteString(fmt.Sprintf("   %s %s\n", glyph, c.Sprintf("%s: %s", d.Name.Label(), d.Outcome)))
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", RuleWidth))
	return b.String()
}

// Banner returns the boxed report title followed by a newline.
func Banner() string {
	inner := RuleWidth - 2
	pad := inner - len(Title)
	left := pad / 2
	right := pad - left

	var b strings.Builder
	b.WriteString("╔" + strings.Repeat("═", inner) + "╗\n")
	b.WriteString("║" + strings.Repeat(" ", left) + Title + strings.Repeat(" ", right) + "║\n")
	b.WriteString("╚" + strings.Repeat("═", inner) + "╝\n")
	return b.String()
}

func (f *Formatter) gradeColor(letter string) *color.Color {
	switch {
	case orchestration.GradeAtLeast(letter, "B"):
		return f.good
	case letter == "C":
		return f.warn
	default:
		return f.bad
	}
}

func writeNumbered(b *strings.Builder, items []string) {
	for i, item := range items {
		b.WriteString(fmt.Sprintf("   %d. %s\n", i+1, item))
	}
}

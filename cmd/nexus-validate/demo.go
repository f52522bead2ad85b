package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/romiluz13/nexus/internal/logging"
	"github.com/romiluz13/nexus/internal/orchestration"
	"github.com/romiluz13/nexus/internal/report"
)

// demoGoodHistory follows the guidelines except for the decision tree.
const demoGoodHistory = `
    <invoke name="Read">
      <parameter name="file_path">/path/to/CLAUDE.md    Checking orchestration protocol...
    Using TodoWrite for planning...
    Launching tasks in parallel...
    `

// demoPoorHistory jumps straight into a complex task.
const demoPoorHistory = `
    User: Build authentication system
    Claude: Let me implement the backend first...
    [implements sequentially without planning]
    `

// demoRunner prints the canned examples.
type demoRunner struct {
	out       io.Writer
	analyzer  *orchestration.Analyzer
	formatter *report.Formatter
	heading   lipgloss.Style
	logger    logging.Logger
}

func newDemoRunner(out io.Writer, analyzer *orchestration.Analyzer, formatter *report.Formatter, color bool, logger logging.Logger) *demoRunner {
	renderer := lipgloss.NewRenderer(out)
	renderer.SetColorProfile(report.Profile(color))
	return &demoRunner{
		out:       out,
		analyzer:  analyzer,
		formatter: formatter,
		heading:   renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		logger:    logging.OrNop(logger),
	}
}

func (d *demoRunner) Run(ctx context.Context) error {
	transcripts := []string{demoGoodHistory, demoPoorHistory}
	results, err := orchestration.AnalyzeAll(ctx, d.analyzer, transcripts)
	if err != nil {
		return fmt.Errorf("analyze demo transcripts: %w", err)
	}
	d.logger.Info("scored %d demo transcripts", len(transcripts))
	good, poor := results[0], results[1]

	var b strings.Builder
	b.WriteString(d.heading.Render("NEXUS Orchestration Validator") + "\n")
	b.WriteString(strings.Repeat("=", report.RuleWidth) + "\n\n")
	b.WriteString("This script validates if Claude followed orchestration guidelines.\n")
	b.WriteString("In production, it would analyze chat history from Claude Code.\n\n")

	b.WriteString(d.heading.Render("Example validation (demo mode):") + "\n\n")
	b.WriteString(d.formatter.Format(good) + "\n")
	b.WriteString("\n\n\n")

	b.WriteString(d.heading.Render("Example with violations (demo mode):") + "\n\n")
	b.WriteString(d.formatter.Format(poor) + "\n")
	b.WriteString("\n\n")

	b.WriteString("💡 To use with real chat history:\n")
	b.WriteString("   nexus-validate <path-to-history.txt>\n")

	_, err = io.WriteString(d.out, b.String())
	return err
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/romiluz13/nexus/internal/config"
	"github.com/romiluz13/nexus/internal/logging"
	"github.com/romiluz13/nexus/internal/orchestration"
	"github.com/romiluz13/nexus/internal/report"
)

// newRootCommand creates the root cobra command. stdout receives reports,
// stderr receives logs.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var configFile string
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:   "nexus-validate [path-to-history.txt]",
		Short: "Score an assistant transcript against the NEXUS orchestration guidelines",
		Long: `nexus-validate checks whether an AI assistant followed the NEXUS orchestration
guidelines: reading the orchestration protocol early, planning complex work with
TodoWrite, launching independent tool calls in parallel, and walking the
complexity decision tree.

Without arguments it scores two built-in demo transcripts. Reading a recorded
transcript from a file is planned but not implemented yet.`,
		Version:       appVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError(fmt.Errorf("reading a transcript from %q is not supported yet; run without arguments for the demo", args[0]))
			}
			return runValidator(cmd, v, configFile, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("nexus-validate {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "Path to a YAML config file")
	flags.String("rules", "", "Path to a YAML ruleset overriding the built-in indicator phrases")
	flags.String("color", string(config.Defaults().Color), "Colour output: auto, always or never")
	flags.String("log-level", config.Defaults().LogLevel, "Log level: debug, info, warn or error")

	for key, flag := range map[string]string{
		config.KeyRules:    "rules",
		config.KeyColor:    "color",
		config.KeyLogLevel: "log-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", flag, err))
		}
	}

	return cmd
}

func runValidator(cmd *cobra.Command, v *viper.Viper, configFile string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return usageError(err)
	}
	if err := logging.Configure(cfg.LogLevel, stderr); err != nil {
		return usageError(err)
	}
	logger := logging.NewComponentLogger("cli")

	opts := []orchestration.Option{orchestration.WithLogger(logging.NewComponentLogger("orchestration"))}
	if cfg.RulesFile != "" {
		rules, err := orchestration.LoadRuleset(cfg.RulesFile)
		if err != nil {
			return fmt.Errorf("load ruleset: %w", err)
		}
		logger.Info("using ruleset %s", cfg.RulesFile)
		opts = append(opts, orchestration.WithRuleset(rules))
	}

	color := config.ResolveColor(cfg.Color, report.AutoColor(stdout))
	logger.Debug("color=%t log_level=%s", color, cfg.LogLevel)

	runner := newDemoRunner(stdout, orchestration.NewAnalyzer(opts...), report.NewFormatter(report.WithColor(color)), color, logger)
	return runner.Run(cmd.Context())
}

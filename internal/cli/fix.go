package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdfix/internal/configloader"
	"github.com/yaklabco/mdfix/internal/logging"
	"github.com/yaklabco/mdfix/pkg/fixer"
	"github.com/yaklabco/mdfix/pkg/langdetect"
	"github.com/yaklabco/mdfix/pkg/reporter"
	"github.com/yaklabco/mdfix/pkg/rule"
	"github.com/yaklabco/mdfix/pkg/runner"
)

const fixLongDescription = `Fix the given Markdown documents in place.

Each file's rule set is resolved from its base name; files the tool
does not recognize get only blank-line collapsing and trailing-newline
normalization. A missing file is reported and the rest of the batch
continues.

Examples:
  mdfix fix docs/CONTRIBUTING.md         # Fix a single document
  mdfix fix docs/FAQ.md docs/prd.md      # Fix several documents
  mdfix fix --all                        # Fix every known document
  mdfix fix --check docs/FAQ.md          # Show would-be changes only
  mdfix fix --rules faq README.md        # Force the FAQ rule set`

func newFixCommand() *cobra.Command {
	var (
		all       bool
		check     bool
		ruleSet   string
		docsDir   string
		jobs      int
		noBackups bool
	)

	cmd := &cobra.Command{
		Use:   "fix [files...]",
		Short: "Apply the curated rewrite rules to Markdown documents",
		Long:  fixLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			logger := logging.Default()
			ctx = logging.WithLogger(ctx, logger)

			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("get config flag: %w", err)
			}
			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}

			loadResult, err := configloader.Load(configloader.LoadOptions{
				WorkingDir:   workDir,
				ExplicitPath: configPath,
			})
			if err != nil {
				return errors.Join(errors.New("failed to load configuration"), err)
			}
			cfg := loadResult.Config
			if loadResult.LoadedFrom != "" {
				logger.Debug("loaded configuration",
					logging.FieldPath, loadResult.LoadedFrom,
					logging.FieldWorkingDir, workDir,
				)
			}

			// CLI flags take precedence over file and environment.
			if cmd.Flags().Changed("docs-dir") {
				cfg.DocsDir = docsDir
			}
			if cmd.Flags().Changed("jobs") {
				cfg.Jobs = jobs
			}
			cfg.Check = check
			cfg.All = all
			cfg.RuleSet = ruleSet
			cfg.NoBackups = noBackups

			var detect func(string) string
			if cfg.DetectLanguage {
				detect = langdetect.Detect
			}
			registry := rule.NewDefaultRegistry(rule.Options{
				MaxLineLength:   cfg.MaxLineLength,
				DefaultLanguage: cfg.DefaultLanguage,
				DetectLanguage:  detect,
			})

			fixRunner := runner.New(fixer.New(registry), registry)
			runOpts := runner.Options{
				Files:    args,
				All:      cfg.All,
				DocsDir:  cfg.DocsDir,
				ForceSet: cfg.RuleSet,
				Jobs:     cfg.Jobs,
				Pipeline: fixer.Options{
					Check:          cfg.Check,
					Backup:         cfg.BackupsEnabled(),
					ValidateOutput: cfg.ValidateOutput,
				},
			}

			logger.Debug("starting fix run",
				logging.FieldFiles, runOpts.Files,
				logging.FieldAll, runOpts.All,
				logging.FieldDocsDir, runOpts.DocsDir,
				logging.FieldRuleSet, runOpts.ForceSet,
				logging.FieldCheck, cfg.Check,
				logging.FieldJobs, runOpts.Jobs,
			)

			result, err := fixRunner.Run(ctx, runOpts)
			if err != nil {
				if errors.Is(err, runner.ErrNoTargets) {
					_ = cmd.Usage()
					return err
				}
				return errors.Join(errors.New("fix run failed"), err)
			}

			logger.Debug("fix run complete",
				logging.FieldFilesTargeted, result.Stats.FilesTargeted,
				logging.FieldFilesFixed, result.Stats.FilesFixed,
				logging.FieldFilesUnchanged, result.Stats.FilesUnchanged,
				logging.FieldFilesMissing, result.Stats.FilesMissing,
			)

			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				colorMode = "auto"
			}
			rep := reporter.New(reporter.Options{
				Writer: cmd.OutOrStdout(),
				Color:  colorMode,
				Check:  cfg.Check,
			})
			if err := rep.Report(result); err != nil {
				return fmt.Errorf("report results: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "fix all known documents under the docs directory")
	cmd.Flags().BoolVar(&check, "check", false, "report would-be changes without writing")
	cmd.Flags().StringVar(&ruleSet, "rules", "", "force one rule set across the batch (contributing, faq, prd)")
	cmd.Flags().StringVar(&docsDir, "docs-dir", runner.DefaultDocsDir, "directory searched by --all")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&noBackups, "no-backups", false, "disable sidecar backups when fixing")

	return cmd
}

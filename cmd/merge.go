package cmd

import (
	"fmt"
	"io"

	"catalog-manager/core/catalog"
	"catalog-manager/core/logger"
	"catalog-manager/core/reconcile"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configuredPath string
	previousPath   string
	discoveredPath string
	outPath        string
	printPlan      bool
)

// mergeCmd merges catalog files without touching any store.
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge a configured catalog with a new discovery (offline)",
	Long: `Merges catalog JSON files and prints the merged catalog.

Examples:
  # Merge and print the catalog
  merge --configured configured.json --previous previous.json --discovered discovered.json

  # Print the per-stream plan instead
  merge --configured configured.json --previous previous.json --discovered discovered.json --plan

  # Write the merged catalog to a file
  merge --configured configured.json --discovered discovered.json --out merged.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMerge(cmd.OutOrStdout(), cliLogger())
	},
}

// diffCmd compares two discovery files.
var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Diff two discoveries (offline)",
	Long: `Reports stream and field changes between two discovered catalogs.
With --configured, changes that break the configured cursor or primary key are flagged.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDiff(cmd.OutOrStdout(), cliLogger())
	},
}

func init() {
	mergeCmd.Flags().StringVar(&configuredPath, "configured", "", "Configured catalog file")
	mergeCmd.Flags().StringVar(&previousPath, "previous", "", "Previously discovered catalog file")
	mergeCmd.Flags().StringVar(&discoveredPath, "discovered", "", "Newly discovered catalog file (required)")
	mergeCmd.Flags().StringVar(&outPath, "out", "", "Write the merged catalog to this file instead of stdout")
	mergeCmd.Flags().BoolVar(&printPlan, "plan", false, "Print the plan with per-stream outcomes")
	_ = mergeCmd.MarkFlagRequired("discovered")

	diffCmd.Flags().StringVar(&previousPath, "previous", "", "Previously discovered catalog file")
	diffCmd.Flags().StringVar(&discoveredPath, "discovered", "", "Newly discovered catalog file (required)")
	diffCmd.Flags().StringVar(&configuredPath, "configured", "", "Configured catalog file")
	_ = diffCmd.MarkFlagRequired("discovered")

	RootCmd.AddCommand(mergeCmd, diffCmd)
}

// cliLogger builds a console logger for offline commands, which run without configuration.
func cliLogger() *zap.Logger {
	l, err := logger.New(&logger.Config{Level: "info", Format: "console"})
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// readOptional loads a catalog file. An empty path is an empty catalog.
func readOptional(path string) (*catalog.Catalog, error) {
	if path == "" {
		return &catalog.Catalog{}, nil
	}
	return catalog.ReadFile(path)
}

func runMerge(out io.Writer, l *zap.Logger) error {
	configured, err := readOptional(configuredPath)
	if err != nil {
		return err
	}
	previous, err := readOptional(previousPath)
	if err != nil {
		return err
	}
	discovered, err := catalog.ReadFile(discoveredPath)
	if err != nil {
		return err
	}

	plan, err := reconcile.MergeWithPlan(configured, previous, discovered)
	if err != nil {
		return err
	}
	printPlanSummary(l, plan)

	switch {
	case printPlan:
		return writeJSON(out, plan)
	case outPath != "":
		if err := catalog.WriteFile(outPath, plan.Catalog); err != nil {
			return err
		}
		l.Info("Merged catalog written", zap.String("file", outPath))
		return nil
	default:
		return catalog.Encode(out, plan.Catalog)
	}
}

func runDiff(out io.Writer, l *zap.Logger) error {
	previous, err := readOptional(previousPath)
	if err != nil {
		return err
	}
	discovered, err := catalog.ReadFile(discoveredPath)
	if err != nil {
		return err
	}
	var configured *catalog.Catalog
	if configuredPath != "" {
		if configured, err = catalog.ReadFile(configuredPath); err != nil {
			return err
		}
	}

	diff, err := reconcile.Diff(previous, discovered, configured)
	if err != nil {
		return err
	}
	l.Info("Catalog diff",
		zap.Int("transforms", len(diff.Transforms)),
		zap.Bool("breaking", diff.Breaking()))
	return writeJSON(out, diff)
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// printPlanSummary logs the plan summary and a sample of the reset reasons.
func printPlanSummary(l *zap.Logger, plan *reconcile.ReconcilePlan) {
	s := plan.Summary
	l.Info("Reconciliation report",
		zap.Int("total_streams", s.TotalStreams),
		zap.Int("kept", s.Kept),
		zap.Int("reset", s.Reset),
		zap.Int("added", s.Added),
		zap.Int("removed", s.Removed),
		zap.Int("pruned_fields", s.PrunedFields),
	)

	const maxShow = 5
	shown := 0
	for _, r := range plan.Results {
		if len(r.Reasons) == 0 {
			continue
		}
		if shown == maxShow {
			l.Info("Additional streams with changes not shown")
			break
		}
		l.Info("Stream changed",
			zap.String("stream", r.Identity.String()),
			zap.String("outcome", string(r.Outcome)),
			zap.Strings("reasons", r.Reasons))
		shown++
	}
}

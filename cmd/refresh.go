package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"catalog-manager/feature/connection/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	refreshSnapshot string
	applyRefresh    bool
	dryRunRefresh   bool
	yesConfirm      bool
)

// refreshCmd merges a stored configuration with a discovery snapshot.
var refreshCmd = &cobra.Command{
	Use:   "refresh <connection-id>",
	Short: "Refresh a connection's catalog against a discovery snapshot",
	Long: `Merges the stored configured catalog with a discovery snapshot, using the
stored baseline snapshot as the previous discovery, and reports the outcome.

Examples:
  # Report only
  refresh conn-a

  # Against a specific snapshot
  refresh conn-a --snapshot 0190f5c2-7b1e-7c3a-9f00-2d1f6b5a8e41

  # Persist with interactive confirmation
  refresh conn-a --apply

  # Persist without prompting
  refresh conn-a --apply --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runRefresh,
}

func init() {
	refreshCmd.Flags().StringVar(&refreshSnapshot, "snapshot", "", "Snapshot ID (default: latest)")
	refreshCmd.Flags().BoolVar(&applyRefresh, "apply", false, "Persist the merged catalog and move the baseline")
	refreshCmd.Flags().BoolVar(&dryRunRefresh, "dry-run", false, "Force dry-run (no changes even with --apply --yes)")
	refreshCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm (non-interactive)")

	RootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	connectionID := args[0]

	rt, err := bootstrap(true)
	if err != nil {
		return err
	}
	if err := rt.migrate(); err != nil {
		return err
	}
	l := rt.logger.With(zap.String("connection_id", connectionID))
	svc := rt.connectionService()

	l.Info("Planning refresh...")
	result, err := svc.Refresh(ctx, connectionID, models.RefreshOptions{SnapshotID: refreshSnapshot})
	if err != nil {
		return fmt.Errorf("failed to plan refresh: %w", err)
	}

	l.Info("Refresh planned",
		zap.String("baseline_snapshot_id", result.BaselineSnapshotID),
		zap.String("snapshot_id", result.SnapshotID),
		zap.Bool("breaking", result.Diff.Breaking()))
	printPlanSummary(l, result.Plan)

	if !applyRefresh {
		l.Info("No actions requested. Use --apply to persist the merged catalog.")
		return nil
	}
	if dryRunRefresh {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	if !confirmApply(result.Plan.Summary.HasChanges()) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	if err := svc.Apply(ctx, result); err != nil {
		return fmt.Errorf("failed to apply refresh: %w", err)
	}
	l.Info("Merged catalog stored", zap.String("baseline_snapshot_id", result.SnapshotID))
	return nil
}

// confirmApply prompts for confirmation unless --yes is set.
func confirmApply(hasChanges bool) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	prompt := "\nType 'yes' to store the merged catalog: "
	if hasChanges {
		prompt = "\n⚠️  The configured catalog will change. Type 'yes' to store the merged catalog: "
	}
	fmt.Print(prompt)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}

package cmd

import (
	"context"
	"fmt"

	"catalog-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check storage structure and the configuration store schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the snapshot bucket and prefix",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// serverCmd represents the integrity server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check the configuration store schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, serverCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the missing bucket and folders")
}

func runIntegrityChecks(ctx context.Context, runStructure, runServer bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := bootstrap(false)
	if err != nil {
		return err
	}
	logg := rt.logger
	svc := integrity.NewService(rt.client, rt.cfg.Storage.Bucket, []string{rt.cfg.Reconcile.SnapshotPrefix}, rt.db, logg)

	if runStructure {
		logg.Info("Checking storage structure...", zap.String("bucket", rt.cfg.Storage.Bucket))
		report, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		switch {
		case report.OK():
			logg.Info("Structure is intact.")
		case fixFlag:
			logg.Warn("Missing structure detected",
				zap.Bool("bucket_exists", report.BucketExists),
				zap.Strings("missing", report.Missing))
			logg.Info("Fixing structure...")
			if err := svc.FixStructure(ctx, report); err != nil {
				return fmt.Errorf("failed to fix structure: %w", err)
			}
			logg.Info("Structure fixed successfully.")
		default:
			logg.Warn("Missing structure detected",
				zap.Bool("bucket_exists", report.BucketExists),
				zap.Strings("missing", report.Missing))
			logg.Info("Run 'integrity structure --fix' to create it.")
		}
	}

	if runServer {
		logg.Info("Checking configuration store schema...")
		report, err := svc.CheckServer()
		if err != nil {
			logg.Error("Server schema check failed", zap.Error(err))
			return nil
		}
		if report.Matched {
			logg.Info("Server schema matches the models.", zap.String("driver", report.Driver))
			return nil
		}

		logg.Warn("Server schema mismatches found", zap.String("driver", report.Driver))
		for table, tblReport := range report.Tables {
			if tblReport.Status == "ok" {
				continue
			}
			if len(tblReport.MissingColumns) > 0 {
				logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
			}
			if len(tblReport.TypeMismatches) > 0 {
				logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
			}
		}
		for _, e := range report.Errors {
			logg.Error("Inspection Error", zap.String("error", e))
		}
	}
	return nil
}

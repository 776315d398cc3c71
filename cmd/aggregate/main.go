package main

import (
	"astrova/cmd"
	"fmt"
	"log"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var csvFile string

var rootCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Rebuild the astrological pattern corpus from stored events",
}

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Generate patterns from recurring snapshot configurations",
	RunE: func(c *cobra.Command, args []string) error {
		deps, err := cmd.InitializeBatchDependencies()
		if err != nil {
			return err
		}
		defer deps.Db.Close()

		written, err := deps.AggregatorHandler.GeneratePatterns(c.Context())
		if err != nil {
			return err
		}
		fmt.Printf("wrote %d patterns\n", written)
		return nil
	},
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "Rebuild the event-pattern match table",
	RunE: func(c *cobra.Command, args []string) error {
		deps, err := cmd.InitializeBatchDependencies()
		if err != nil {
			return err
		}
		defer deps.Db.Close()

		written, err := deps.AggregatorHandler.RebuildMatches(c.Context())
		if err != nil {
			return err
		}
		fmt.Printf("wrote %d matches\n", written)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Recompute per-pattern occurrence counts and success rates",
	RunE: func(c *cobra.Command, args []string) error {
		deps, err := cmd.InitializeBatchDependencies()
		if err != nil {
			return err
		}
		defer deps.Db.Close()

		return deps.AggregatorHandler.RecomputeStats(c.Context())
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run patterns, matches, and stats in order",
	RunE: func(c *cobra.Command, args []string) error {
		deps, err := cmd.InitializeBatchDependencies()
		if err != nil {
			return err
		}
		defer deps.Db.Close()

		return deps.AggregatorHandler.RunAll(c.Context())
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import historical events from CSV and backfill snapshots",
	RunE: func(c *cobra.Command, args []string) error {
		deps, err := cmd.InitializeBatchDependencies()
		if err != nil {
			return err
		}
		defer deps.Db.Close()

		imported, err := deps.EventImportHandler.ImportFromCsv(c.Context(), csvFile)
		if err != nil {
			return err
		}
		fmt.Printf("imported %d events\n", imported)
		return nil
	},
}

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Compute snapshots for stored events missing one",
	RunE: func(c *cobra.Command, args []string) error {
		deps, err := cmd.InitializeBatchDependencies()
		if err != nil {
			return err
		}
		defer deps.Db.Close()

		updated, err := deps.EventImportHandler.BackfillSnapshots(c.Context())
		if err != nil {
			return err
		}
		fmt.Printf("backfilled %d snapshots\n", updated)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&csvFile, "file", "f", "", "CSV file to import")
	_ = importCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(patternsCmd, matchesCmd, statsCmd, allCmd, importCmd, backfillCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

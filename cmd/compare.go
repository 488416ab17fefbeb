package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/schedsim/sim"
)

var (
	compareInputPath   string
	compareQuantum     int64
	compareResultsPath string
)

// compareCmd runs every policy over the same process set
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run every scheduling policy over one process set and compare averages",
	Run: func(cmd *cobra.Command, args []string) {
		procs, spec, err := loadProcessFile(compareInputPath)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		q := compareQuantum
		if !cmd.Flags().Changed("quantum") && spec.Quantum > 0 {
			q = spec.Quantum
		}
		if err := executeCompare(os.Stdout, procs, q, compareResultsPath); err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
	},
}

func executeCompare(w io.Writer, procs []*sim.Process, q int64, resultsPath string) error {
	cmp, err := sim.CompareAll(procs, q)
	if err != nil {
		return err
	}
	cmp.Print(w)
	if resultsPath == "" {
		return nil
	}
	data, err := json.MarshalIndent(cmp, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding comparison: %w", err)
	}
	if err := os.WriteFile(resultsPath, data, 0o644); err != nil {
		return fmt.Errorf("writing comparison: %w", err)
	}
	logrus.Debugf("Successfully wrote comparison to '%s'", resultsPath)
	return nil
}

func init() {
	compareCmd.Flags().StringVar(&compareInputPath, "input", "", "Process set file (.csv, .yaml or .yml)")
	compareCmd.Flags().Int64Var(&compareQuantum, "quantum", defaultQuantum, "Round robin time quantum (in ticks)")
	compareCmd.Flags().StringVar(&compareResultsPath, "results-path", "", "Save the comparison as JSON to this file")
	rootCmd.AddCommand(compareCmd)
}


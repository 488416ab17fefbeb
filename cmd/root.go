package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/schedsim/api"
	"github.com/inference-sim/schedsim/sim"
	"github.com/inference-sim/schedsim/sim/trace"
	"github.com/inference-sim/schedsim/sim/workload"
)

var (
	// CLI flags for the simulation run
	policyName       string // Scheduling policy name
	quantum          int64  // Round robin time quantum (in ticks)
	inputPath        string // Process set file (.csv, .yaml, .yml)
	policyConfigPath string // YAML PolicyBundle; explicit flags override it
	interactive      bool   // Prompt for the process set on stdin
	showGantt        bool   // Print the Gantt chart after the result table
	resultsPath      string // File to save the report as JSON
	remoteURL        string // Base URL of a `schedsim serve` instance
	logLevel         string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Discrete-time CPU scheduling simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling policy over a process set",
	Run: func(cmd *cobra.Command, args []string) {
		in, err := loadRunInput(cmd, os.Stdin, os.Stdout)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := executeRun(cmd.Context(), os.Stdout, in); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// runInput is the fully resolved input of one run.
type runInput struct {
	Processes   []*sim.Process
	Policy      string
	Quantum     int64
	Gantt       bool
	ResultsPath string
	RemoteURL   string
}

// flagOverrides carries the explicit CLI values. A nil pointer means the flag was not set.
type flagOverrides struct {
	Policy  *string
	Quantum *int64
}

func overridesFrom(cmd *cobra.Command) flagOverrides {
	var o flagOverrides
	if cmd.Flags().Changed("policy") {
		o.Policy = &policyName
	}
	if cmd.Flags().Changed("quantum") {
		o.Quantum = &quantum
	}
	return o
}

// resolvePolicy layers policy settings: flag defaults, then the input file, then the
// policy bundle, then explicitly set flags.
func resolvePolicy(spec *workload.WorkloadSpec, bundlePath string, flags flagOverrides) (string, int64, error) {
	policy, q := sim.PolicyFCFS, int64(defaultQuantum)
	if spec != nil {
		if spec.Policy != "" {
			policy = spec.Policy
		}
		if spec.Quantum > 0 {
			q = spec.Quantum
		}
	}
	if bundlePath != "" {
		bundle, err := sim.LoadPolicyBundle(bundlePath)
		if err != nil {
			return "", 0, err
		}
		if err := bundle.Validate(); err != nil {
			return "", 0, fmt.Errorf("policy config %s: %w", bundlePath, err)
		}
		if bundle.Policy != "" {
			policy = bundle.Policy
		}
		if bundle.Quantum != nil {
			q = *bundle.Quantum
		}
	}
	if flags.Policy != nil {
		policy = *flags.Policy
	}
	if flags.Quantum != nil {
		q = *flags.Quantum
	}
	if !sim.IsValidPolicy(policy) {
		return "", 0, fmt.Errorf("%w: unknown policy %q", sim.ErrInvalidInput, policy)
	}
	return policy, q, nil
}

func loadRunInput(cmd *cobra.Command, stdin io.Reader, stdout io.Writer) (*runInput, error) {
	in := &runInput{Gantt: showGantt, ResultsPath: resultsPath, RemoteURL: remoteURL}
	flags := overridesFrom(cmd)

	if interactive {
		policy, q, err := resolvePolicy(nil, policyConfigPath, flags)
		if err != nil {
			return nil, err
		}
		procs, typedQuantum, err := workload.ReadInteractive(stdin, stdout, policy)
		if err != nil {
			return nil, fmt.Errorf("reading processes: %w", err)
		}
		if policy == sim.PolicyRoundRobin {
			q = typedQuantum
		}
		in.Processes, in.Policy, in.Quantum = procs, policy, q
		return in, nil
	}

	procs, spec, err := loadProcessFile(inputPath)
	if err != nil {
		return nil, err
	}
	policy, q, err := resolvePolicy(spec, policyConfigPath, flags)
	if err != nil {
		return nil, err
	}
	in.Processes, in.Policy, in.Quantum = procs, policy, q
	return in, nil
}

// loadProcessFile loads and validates a process file.
func loadProcessFile(path string) ([]*sim.Process, *workload.WorkloadSpec, error) {
	if path == "" {
		return nil, nil, fmt.Errorf("%w: no process set given; use --input or --interactive", sim.ErrEmptyInput)
	}
	spec, err := workload.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	procs, err := spec.ToProcesses()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	logrus.Infof("Loaded %d processes from %s", len(procs), path)
	return procs, spec, nil
}

// executeRun simulates locally, or remotely when a remote URL is set, and prints the result.
func executeRun(ctx context.Context, w io.Writer, in *runInput) error {
	// Quantum is meaningful only for round robin; keep it out of other reports.
	q := in.Quantum
	if in.Policy != sim.PolicyRoundRobin {
		q = 0
	}

	var (
		report  *sim.Report
		bars    []trace.GanttBar
		summary *trace.TimelineSummary
	)
	if in.RemoteURL != "" {
		if ctx == nil {
			ctx = context.Background()
		}
		resp, err := api.NewClient(in.RemoteURL).Simulate(ctx, api.NewSimulateRequest(in.Policy, q, in.Processes))
		if err != nil {
			return err
		}
		// Merged bars lose slice boundaries; the summary comes from the server.
		report, bars, summary = &resp.Report, resp.Gantt, resp.Summary
	} else {
		res, err := sim.Simulate(in.Processes, in.Policy, q)
		if err != nil {
			return err
		}
		report, bars, summary = res.Report, res.Timeline.GanttBars(), res.Summary
	}

	report.Print(w, sim.UsesPriority(in.Policy))
	if in.Gantt {
		_, _ = fmt.Fprintln(w)
		trace.PrintGanttBars(w, bars, summary)
	}
	if in.ResultsPath != "" {
		if err := report.SaveJSON(in.ResultsPath); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

const defaultQuantum = 2

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&policyName, "policy", sim.PolicyFCFS, "Scheduling policy (fcfs, sjf, srtf, priority, priority-preemptive, rr)")
	runCmd.Flags().Int64Var(&quantum, "quantum", defaultQuantum, "Round robin time quantum (in ticks)")
	runCmd.Flags().StringVar(&inputPath, "input", "", "Process set file (.csv, .yaml or .yml)")
	runCmd.Flags().StringVar(&policyConfigPath, "policy-config", "", "YAML policy configuration; explicit flags override it")
	runCmd.Flags().BoolVar(&interactive, "interactive", false, "Prompt for the process set on stdin")
	runCmd.Flags().BoolVar(&showGantt, "gantt", false, "Print the Gantt chart after the result table")
	runCmd.Flags().StringVar(&resultsPath, "results-path", "", "Save the report as JSON to this file")
	runCmd.Flags().StringVar(&remoteURL, "remote", "", "Run on a schedsim serve instance at this base URL")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}

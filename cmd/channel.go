package cmd

import (
	"github.com/nathanhack/infochannel/cmd/internal/metrics"
	"github.com/nathanhack/infochannel/cmd/internal/simulate"

	"github.com/spf13/cobra"
)

// metricsCmd represents the metrics command
var metricsCmd = &cobra.Command{
	Use:     "metrics PROBS_FILE",
	Aliases: []string{"m"},
	Short:   "Information measures of a binary channel",
	Long: `Reads the source distribution (first line) and channel matrix (second and third line)
from PROBS_FILE and prints H(A), H(B), the posterior entropies, equivocation, mutual information,
joint entropy and loss.`,
	Args: cobra.ExactArgs(1),
	Run:  metrics.MetricsRun,
}

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:     "simulate PROBS_FILE N M",
	Aliases: []string{"sim", "s"},
	Short:   "Simulates sending N random messages of M bits",
	Long: `Prints the channel metrics then sends N random messages of length M through the channel
described by PROBS_FILE, reporting how many arrived correctly, how many had errors and,
with --parity, how many were corrected by the cross parity code.`,
	Args: cobra.ExactArgs(3),
	Run:  simulate.SimulateRun,
}

func init() {
	rootCmd.AddCommand(metricsCmd)
	metricsCmd.Flags().BoolVarP(&metrics.JSON, "json", "j", false, "print the metrics as JSON")

	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().BoolVarP(&simulate.Parity, "parity", "p", false, "apply cross parity to the messages before sending")
	simulateCmd.Flags().Int64VarP(&simulate.Seed, "seed", "s", 0, "seed for the random draws (default: time based)")
	simulateCmd.Flags().UintVarP(&simulate.Trials, "trials", "t", 1, "the number of batches to simulate; >1 reports averaged fractions")
	simulateCmd.Flags().UintVar(&simulate.Threads, "threads", 0, "number of threads to use (0 means to use the # of threads equal to the # of CPUs)")
	simulateCmd.Flags().UintVarP(&simulate.Flips, "flips", "f", 0, "flip exactly this many random bits per batch instead of using the channel matrix")
	simulateCmd.Flags().BoolVar(&simulate.Show, "show", false, "print the sent and received matrices (single trial only)")
	simulateCmd.Flags().StringVarP(&simulate.OutputFile, "output", "o", "", "RESULT_JSON to save (and continue) the results in")
	simulateCmd.Flags().StringVarP(&simulate.ConfigFile, "config", "c", "", "TOML file with defaults for these flags")
	simulateCmd.Flags().BoolVarP(&simulate.Verbose, "verbose", "v", false, "enable verbose info")
}

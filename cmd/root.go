package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "infochannel",
	Short: "Binary channel analysis and cross parity simulation",
	Long: `infochannel computes the entropies, equivocation and mutual information of a binary
source sent over a binary channel, and simulates sending random messages through it,
optionally protected by a cross parity code.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

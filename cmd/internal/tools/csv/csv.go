package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathanhack/infochannel/cmd/internal/tools"
	"github.com/spf13/cobra"
)

var OutputFile string

var header = []string{
	"Results File", "N", "M", "Parity", "Trials",
	"Mutual Information", "Equivocation",
	"Correct", "Incorrect", "Corrected", "Residual", "Uncorrectable",
}

var CSVRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	stats := make([]*tools.SimulationStats, len(args))
	var err error
	for i, resultFile := range args {
		stats[i], err = tools.LoadResults(resultFile)
		if err != nil {
			fmt.Println(err)
			return
		}
		if stats[i] == nil {
			fmt.Printf("results file %v does not exist\n", resultFile)
			return
		}
	}

	f, err := os.Create(OutputFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	err = w.Write(header)
	if err != nil {
		fmt.Println(err)
		return
	}

	for i, s := range stats {
		err = w.Write(record(strings.TrimSuffix(args[i], filepath.Ext(args[i])), s))
		if err != nil {
			fmt.Println(err)
			return
		}
	}
}

func record(name string, s *tools.SimulationStats) []string {
	return []string{
		name,
		fmt.Sprint(s.Messages),
		fmt.Sprint(s.MessageLength),
		fmt.Sprint(s.Parity),
		fmt.Sprint(s.Stats.Trials()),
		fmt.Sprint(s.Metrics.MutualInformation),
		fmt.Sprint(s.Metrics.Equivocation),
		fmt.Sprint(s.Stats.Correct.Mean),
		fmt.Sprint(s.Stats.Incorrect.Mean),
		fmt.Sprint(s.Stats.Corrected.Mean),
		fmt.Sprint(s.Stats.Residual.Mean),
		fmt.Sprint(s.Stats.Uncorrectable.Mean),
	}
}

package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nathanhack/infochannel/cmd/internal/tools"
	"github.com/spf13/cobra"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var OutputFile string

var categories = []string{"Correct", "Incorrect", "Corrected", "Residual"}

var ChartRun = func(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("requires at least one RESULTS_JSON")
		return
	}

	// loop through all the results files and collect data needed for displaying
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

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Results",
			Subtitle: "Fraction of messages",
			Left:     "20%",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true,
			Orient: "vertical",
			Right:  "0",
			Top:    "top",
			Type:   "scroll",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Outcome",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Mean Fraction",
			SplitLine: &opts.SplitLine{Show: true},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
	)

	bar.SetXAxis(categories)

	for i, s := range stats {
		bar.AddSeries(strings.TrimSuffix(args[i], filepath.Ext(args[i])), series(s))
	}

	err = bar.Render(f)
	if err != nil {
		fmt.Println(err)
	}
}

func series(stat *tools.SimulationStats) []opts.BarData {
	return []opts.BarData{
		{Value: stat.Stats.Correct.Mean},
		{Value: stat.Stats.Incorrect.Mean},
		{Value: stat.Stats.Corrected.Mean},
		{Value: stat.Stats.Residual.Mean},
	}
}

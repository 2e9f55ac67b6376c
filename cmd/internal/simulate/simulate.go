package simulate

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/nathanhack/infochannel/analysis"
	"github.com/nathanhack/infochannel/benchmarking"
	"github.com/nathanhack/infochannel/channel"
	"github.com/nathanhack/infochannel/cmd/internal/tools"
	"github.com/nathanhack/infochannel/random"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	Parity     bool
	Seed       int64
	Trials     uint
	Threads    uint
	Flips      uint
	Show       bool
	Verbose    bool
	OutputFile string
	ConfigFile string

	seeded bool
)

var SimulateRun = func(cmd *cobra.Command, args []string) {
	if len(args) != 3 {
		fmt.Println("requires PROBS_FILE N M")
		return
	}

	seeded = cmd.Flags().Changed("seed")
	if ConfigFile != "" {
		fc, err := loadFileConfig(ConfigFile)
		if err != nil {
			fmt.Println("unable to read config: ", err)
			return
		}
		applyFileConfig(cmd.Flags(), fc)
	}

	if Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	sim, err := simulation(args)
	if err != nil {
		fmt.Println(err)
		return
	}

	//without a seed we want something different every time
	if !seeded {
		Seed = time.Now().UnixNano()
	}
	logrus.Debugf("Using seed %v", Seed)

	fmt.Println()
	fmt.Print(channel.ComputeMetrics(sim.Distribution, sim.Matrix))
	fmt.Println()

	if Trials <= 1 {
		runOnce(sim)
		return
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sig := <-sigs
		fmt.Println()
		fmt.Println(sig)
		cancel()
	}()

	runBenchmark(ctx, sim)
}

func simulation(args []string) (benchmarking.Simulation, error) {
	d, c, err := tools.LoadChannel(args[0])
	if err != nil {
		return benchmarking.Simulation{}, err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return benchmarking.Simulation{}, fmt.Errorf("N must be a natural number: %w", err)
	}
	m, err := strconv.Atoi(args[2])
	if err != nil {
		return benchmarking.Simulation{}, fmt.Errorf("M must be a natural number: %w", err)
	}

	sim := benchmarking.Simulation{
		Distribution:  d,
		Matrix:        c,
		Messages:      n,
		MessageLength: m,
		Parity:        Parity,
		Flips:         int(Flips),
	}
	return sim, sim.Validate()
}

func runOnce(sim benchmarking.Simulation) {
	sent, received, result, err := sim.Run(random.New(Seed))
	if err != nil {
		fmt.Println(err)
		return
	}

	if Show {
		fmt.Println("Sent:")
		fmt.Println(sent)
		fmt.Println("Received:")
		fmt.Println(received)
		fmt.Println("Bits flipped by the channel:", benchmarking.HammingDistance(sent, received))
		fmt.Println()
	}
	printResult(result)

	if OutputFile == "" {
		return
	}
	data := tools.NewSimulationStats(sim, Seed)
	data.Stats.Update(sim.Messages, result)
	err = tools.SaveResults(OutputFile, data)
	if err != nil {
		fmt.Println(err)
	}
}

func printResult(result analysis.Result) {
	fmt.Println("Messages sent correctly:", result.Correct)
	fmt.Println("Messages with errors:", result.Incorrect)
	if result.Parity {
		fmt.Println("Messages corrected:", result.Corrected)
		fmt.Println("Messages still wrong after correction:", result.Residual)
		fmt.Println("Parity check:", result.Pattern)
	}
}

func runBenchmark(ctx context.Context, sim benchmarking.Simulation) {
	data, err := loadOrCreate(sim)
	if err != nil {
		fmt.Println(err)
		return
	}

	checkpointMux := sync.Mutex{}
	checkpointCount := 0
	var checkpoint benchmarking.Checkpoints
	if OutputFile != "" {
		checkpoint = func(stats benchmarking.Stats) {
			//we want to save the checkpoint
			checkpointMux.Lock()
			defer checkpointMux.Unlock()

			if checkpointCount%1000 == 0 {
				data.Stats = stats
				err := tools.SaveResults(OutputFile, data)
				if err != nil {
					fmt.Println(err)
				}
			}
			checkpointCount++
		}
	}

	stats, err := benchmarking.BenchmarkContinueStats(ctx, int(Trials), int(Threads), sim, Seed, checkpoint, data.Stats, true)
	if err != nil {
		fmt.Println(err)
	}
	data.Stats = stats

	fmt.Println("Trials:", stats.Trials())
	fmt.Println("Fraction of messages:", stats)

	if OutputFile == "" {
		return
	}
	err = tools.SaveResults(OutputFile, data)
	if err != nil {
		fmt.Println(err)
	}
}

// loadOrCreate continues a previous RESULT_JSON when it was made by the same simulation.
func loadOrCreate(sim benchmarking.Simulation) (*tools.SimulationStats, error) {
	if OutputFile == "" {
		return tools.NewSimulationStats(sim, Seed), nil
	}

	data, err := tools.LoadResults(OutputFile)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return tools.NewSimulationStats(sim, Seed), nil
	}

	if data.TypeInfo != tools.TypeInfo(sim, data.Seed) {
		return nil, fmt.Errorf("results loaded do not match the simulation expected %v but found %v", tools.TypeInfo(sim, data.Seed), data.TypeInfo)
	}
	if !seeded {
		//continue the saved trial sequence
		Seed = data.Seed
	}
	if data.Seed != Seed {
		return nil, fmt.Errorf("results loaded were made with seed %v not %v", data.Seed, Seed)
	}
	logrus.Debugf("Continuing %v from %v trials", data.ID, data.Stats.Trials())
	return data, nil
}

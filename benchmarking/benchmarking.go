package benchmarking

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/nathanhack/avgstd"
	"github.com/nathanhack/infochannel/analysis"
	"github.com/nathanhack/infochannel/batch"
	"github.com/nathanhack/infochannel/channel"
	"github.com/nathanhack/infochannel/crossparity"
	"github.com/nathanhack/infochannel/random"
	"github.com/nathanhack/infochannel/source"
	"github.com/nathanhack/threadpool"
	"github.com/sirupsen/logrus"
)

var ErrInvalidDimensions = errors.New("number of messages and message length must be >0")

//Simulation describes one batch transmission: Messages random messages of MessageLength bits
// drawn from Distribution, optionally cross parity encoded, then sent over Matrix.
type Simulation struct {
	Distribution  channel.Distribution
	Matrix        channel.Matrix
	Messages      int  // N
	MessageLength int  // M
	Parity        bool // apply cross parity before transmitting
	Flips         int  // when >0 the channel flips exactly this many random bits instead of using Matrix
}

//Validate checks the dimensions, it never consumes random draws.
func (s Simulation) Validate() error {
	if s.Messages <= 0 || s.MessageLength <= 0 {
		return fmt.Errorf("found N=%v M=%v: %w", s.Messages, s.MessageLength, ErrInvalidDimensions)
	}
	if s.Flips < 0 {
		return fmt.Errorf("flips must be >=0 but found %v", s.Flips)
	}
	return nil
}

//Run generates, encodes, transmits and analyzes one batch. It returns the sent and received
// batches (including parity bits when enabled) along with the result.
func (s Simulation) Run(rng random.Source) (sent, received *batch.Batch, result analysis.Result, err error) {
	if err = s.Validate(); err != nil {
		return nil, nil, analysis.Result{}, err
	}

	sent = source.Generate(rng, s.Distribution, s.Messages, s.MessageLength)
	if s.Parity {
		sent = crossparity.Encode(sent)
	}

	if s.Flips > 0 {
		received = RandomFlipBitCount(rng, sent, s.Flips)
	} else {
		received = channel.Transmit(rng, s.Matrix, sent)
	}

	result, err = analysis.Analyze(sent, received, s.Messages, s.MessageLength, s.Parity)
	if err != nil {
		return nil, nil, analysis.Result{}, err
	}
	logrus.Debugf("Simulation N=%v M=%v parity=%v: %v", s.Messages, s.MessageLength, s.Parity, result)
	return sent, received, result, nil
}

//RunSimulation sends n random messages of m bits drawn from d through channel c and counts
// how many arrived intact, and when useParity is set how many the cross parity code corrected.
func RunSimulation(d channel.Distribution, c channel.Matrix, n, m int, useParity bool, rng random.Source) (analysis.Result, error) {
	s := Simulation{
		Distribution:  d,
		Matrix:        c,
		Messages:      n,
		MessageLength: m,
		Parity:        useParity,
	}
	_, _, result, err := s.Run(rng)
	return result, err
}

//Stats aggregates many simulation runs, every value is a fraction of the N messages
// except Uncorrectable which is the fraction of runs.
type Stats struct {
	Correct       avgstd.AvgStd
	Incorrect     avgstd.AvgStd
	Corrected     avgstd.AvgStd
	Residual      avgstd.AvgStd // messages still wrong after correction
	Uncorrectable avgstd.AvgStd // runs whose parity failures could not be corrected
}

func (s Stats) Trials() int {
	return s.Correct.Count
}

func (s Stats) String() string {
	return fmt.Sprintf("{Correct:%0.02f(+/-%0.02f), Incorrect:%0.02f(+/-%0.02f), Corrected:%0.02f(+/-%0.02f), Residual:%0.02f(+/-%0.02f)}",
		s.Correct.Mean, math.Sqrt(s.Correct.SampledVariance()),
		s.Incorrect.Mean, math.Sqrt(s.Incorrect.SampledVariance()),
		s.Corrected.Mean, math.Sqrt(s.Corrected.SampledVariance()),
		s.Residual.Mean, math.Sqrt(s.Residual.SampledVariance()),
	)
}

//Update adds the result of one run over n messages.
func (s *Stats) Update(n int, result analysis.Result) {
	s.Correct.Update(float64(result.Correct) / float64(n))
	s.Incorrect.Update(float64(result.Incorrect) / float64(n))
	s.Corrected.Update(float64(result.Corrected) / float64(n))
	s.Residual.Update(float64(result.Residual) / float64(n))
	uncorrectable := 0.0
	if result.Pattern == crossparity.Uncorrectable {
		uncorrectable = 1
	}
	s.Uncorrectable.Update(uncorrectable)
}

type Checkpoints func(updatedStats Stats)

//Benchmark runs trials independent simulations. Trial i uses a random source seeded with seed+i
// so the statistics do not depend on the number of threads.
func Benchmark(ctx context.Context,
	trials, threads int,
	sim Simulation,
	seed int64,
	checkpoints Checkpoints,
	showProgress bool) (Stats, error) {
	return BenchmarkContinueStats(ctx, trials, threads, sim, seed, checkpoints, Stats{}, showProgress)
}

//BenchmarkContinueStats is Benchmark picking up after the trials already counted in previousStats.
func BenchmarkContinueStats(ctx context.Context,
	trials, threads int,
	sim Simulation,
	seed int64,
	checkpoints Checkpoints,
	previousStats Stats,
	showProgress bool) (Stats, error) {
	if err := sim.Validate(); err != nil {
		return previousStats, err
	}

	trialsToRun := trials - previousStats.Trials()
	if trialsToRun <= 0 {
		return previousStats, nil
	}
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	var bar *pb.ProgressBar
	if showProgress {
		bar = pb.StartNew(trialsToRun)
	}

	pool := threadpool.New(ctx, threads)
	statsMux := sync.Mutex{}
	var firstErr error

	trial := func(i int) {
		if ctx.Err() != nil {
			return
		}
		_, _, result, err := sim.Run(random.New(seed + int64(i)))

		statsMux.Lock()
		defer statsMux.Unlock()
		if showProgress {
			bar.Increment()
		}
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return
		}
		previousStats.Update(sim.Messages, result)
		if checkpoints != nil {
			checkpoints(previousStats) //give them the updated checkpoint
		}
	}

	for i := previousStats.Trials(); i < trials; i++ {
		if ctx.Err() != nil {
			logrus.Debugf("Benchmark cancelled after scheduling %v trials", i)
			break
		}
		tmp := i
		pool.Add(func() { trial(tmp) })
	}
	pool.Wait()
	if showProgress {
		bar.Finish()
	}
	return previousStats, firstErr
}

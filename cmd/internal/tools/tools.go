package tools

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/nathanhack/infochannel/benchmarking"
	"github.com/nathanhack/infochannel/channel"
)

//SimulationStats is what gets saved to a RESULT_JSON file.
type SimulationStats struct {
	ID            string
	TypeInfo      string
	Distribution  channel.Distribution
	Matrix        [][]float64
	Messages      int
	MessageLength int
	Parity        bool
	Flips         int
	Seed          int64
	Metrics       channel.Metrics
	Stats         benchmarking.Stats
}

//NewSimulationStats creates an empty result for the simulation.
func NewSimulationStats(sim benchmarking.Simulation, seed int64) *SimulationStats {
	return &SimulationStats{
		ID:            uuid.New().String(),
		TypeInfo:      TypeInfo(sim, seed),
		Distribution:  sim.Distribution,
		Matrix:        sim.Matrix.Rows(),
		Messages:      sim.Messages,
		MessageLength: sim.MessageLength,
		Parity:        sim.Parity,
		Flips:         sim.Flips,
		Seed:          seed,
		Metrics:       channel.ComputeMetrics(sim.Distribution, sim.Matrix),
	}
}

//TypeInfo identifies everything that must match for stats to be continued.
func TypeInfo(sim benchmarking.Simulation, seed int64) string {
	return fmt.Sprintf("BC:%v/%v/N=%v/M=%v/parity=%v/flips=%v/seed=%v",
		sim.Distribution, sim.Matrix, sim.Messages, sim.MessageLength, sim.Parity, sim.Flips, seed)
}

//LoadChannel reads the source distribution and channel matrix from a PROBS_FILE.
func LoadChannel(filepath string) (channel.Distribution, channel.Matrix, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return channel.Distribution{}, channel.Matrix{}, fmt.Errorf("unable to open %v: %w", filepath, err)
	}
	defer f.Close()

	d, c, err := channel.Parse(f)
	if err != nil {
		return channel.Distribution{}, channel.Matrix{}, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}
	return d, c, nil
}

//LoadResults returns nil, nil when the file does not exist.
func LoadResults(filepath string) (*SimulationStats, error) {
	if _, err := os.Stat(filepath); os.IsNotExist(err) {
		return nil, nil
	}

	bs, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("error while reading file %v: %w", filepath, err)
	}

	var stat SimulationStats
	err = json.Unmarshal(bs, &stat)
	if err != nil {
		return nil, fmt.Errorf("error while unmarshalling file %v: %w", filepath, err)
	}
	return &stat, nil
}

func SaveResults(filepath string, data *SimulationStats) error {
	bs, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("error serializing results: %w", err)
	}

	err = os.WriteFile(filepath, bs, 0644)
	if err != nil {
		return fmt.Errorf("error while saving results to %v: %w", filepath, err)
	}
	return nil
}

package simulate

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

// fileConfig holds defaults for the simulate flags. Flags given on the command line win.
type fileConfig struct {
	Parity  *bool   `toml:"parity"`
	Seed    *int64  `toml:"seed"`
	Trials  *uint   `toml:"trials"`
	Threads *uint   `toml:"threads"`
	Flips   *uint   `toml:"flips"`
	Show    *bool   `toml:"show"`
	Verbose *bool   `toml:"verbose"`
	Output  *string `toml:"output"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var fc fileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// applyFileConfig copies every value present in fc unless its flag was set explicitly.
func applyFileConfig(flags *pflag.FlagSet, fc fileConfig) {
	set := func(name string) bool {
		return flags == nil || !flags.Changed(name)
	}

	if fc.Parity != nil && set("parity") {
		Parity = *fc.Parity
	}
	if fc.Seed != nil && set("seed") {
		Seed = *fc.Seed
		seeded = true
	}
	if fc.Trials != nil && set("trials") {
		Trials = *fc.Trials
	}
	if fc.Threads != nil && set("threads") {
		Threads = *fc.Threads
	}
	if fc.Flips != nil && set("flips") {
		Flips = *fc.Flips
	}
	if fc.Show != nil && set("show") {
		Show = *fc.Show
	}
	if fc.Verbose != nil && set("verbose") {
		Verbose = *fc.Verbose
	}
	if fc.Output != nil && set("output") {
		OutputFile = *fc.Output
	}
}

package cmd

import (
	"fmt"

	"github.com/jsphweid/aleatoric/config"
	"github.com/jsphweid/aleatoric/midi"
	"github.com/spf13/cobra"
)

var generateFlags struct {
	config string
	name   string
	bpm    int
	length int
	tracks int
	seed   int64
	input  string
	output string
	cached bool
	write  string
}

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&generateFlags.config, "config", "c", "", "YAML composition file")
	f.StringVar(&generateFlags.name, "name", "", "composition name")
	f.IntVar(&generateFlags.bpm, "bpm", 0, "tempo in beats per minute")
	f.IntVar(&generateFlags.length, "length", 0, "excerpts per track")
	f.IntVar(&generateFlags.tracks, "tracks", 0, "number of tracks to generate (1-6)")
	f.Int64Var(&generateFlags.seed, "seed", 0, "random seed")
	f.StringVar(&generateFlags.input, "input", "", "input excerpt dir")
	f.StringVar(&generateFlags.output, "output", "", "output dir")
	f.BoolVar(&generateFlags.cached, "cached", false, "use the library written by index")
	f.StringVar(&generateFlags.write, "write-config", "", "save the resolved config as YAML")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates a composition",
	Long:  `Generates a composition from the excerpt library and writes it to <output>/<name>.mid`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(generateFlags.config)
		if err != nil {
			return err
		}
		applyGenerateFlags(cmd, cfg)
		if generateFlags.write != "" {
			if err := cfg.Save(generateFlags.write); err != nil {
				return err
			}
		}

		path, err := Generate(cfg, generateFlags.cached)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %v\n", path)
		return nil
	},
}

func applyGenerateFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("name") {
		cfg.Name = generateFlags.name
	}
	if f.Changed("bpm") {
		cfg.BPM = generateFlags.bpm
	}
	if f.Changed("length") {
		cfg.Length = generateFlags.length
	}
	if f.Changed("tracks") {
		cfg.MaxTracks = generateFlags.tracks
	}
	if f.Changed("seed") {
		seed := generateFlags.seed
		cfg.Seed = &seed
	}
	if f.Changed("input") {
		cfg.InputDir = generateFlags.input
	}
	if f.Changed("output") {
		cfg.OutputDir = generateFlags.output
	}
}

// Generate runs the whole pipeline for cfg and returns the written file.
func Generate(cfg *config.Config, cached bool) (string, error) {
	lib, err := loadLibrary(cfg.InputDir, cached)
	if err != nil {
		return "", err
	}
	comp, err := Compose(cfg, *lib)
	if err != nil {
		return "", err
	}
	return midi.WriteFile(cfg.OutputDir, comp)
}

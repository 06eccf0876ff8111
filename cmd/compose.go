package cmd

import (
	"log/slog"

	"github.com/jsphweid/aleatoric/cache"
	"github.com/jsphweid/aleatoric/config"
	"github.com/jsphweid/aleatoric/constants"
	"github.com/jsphweid/aleatoric/generator"
	"github.com/jsphweid/aleatoric/midi"
	"github.com/jsphweid/aleatoric/model"
)

func loadLibrary(inputDir string, cached bool) (*model.ExcerptLibrary, error) {
	if !cached {
		return midi.ReadLibrary(inputDir)
	}

	entry, err := cache.Load(constants.GetCachePath())
	if err != nil {
		return nil, err
	}
	slog.Info("using cached library", "id", entry.ID, "source", entry.SourceDir, "excerpts", entry.Library.Len())
	return &entry.Library, nil
}

// Compose builds the configured tracks over lib and runs one generation pass.
func Compose(cfg *config.Config, lib model.ExcerptLibrary) (*model.Composition, error) {
	comp, tracks, err := cfg.Build(lib)
	if err != nil {
		return nil, err
	}

	seed := cfg.SeedOrNow()
	slog.Info("generating", "name", comp.Name, "seed", seed, "length", comp.Length, "max_tracks", comp.MaxTracks)
	if err := generator.New(seed).Generate(comp, tracks); err != nil {
		return nil, err
	}
	return comp, nil
}

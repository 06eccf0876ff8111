package cmd

import (
	"fmt"

	"github.com/jsphweid/aleatoric/cache"
	"github.com/jsphweid/aleatoric/constants"
	"github.com/jsphweid/aleatoric/midi"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [input dir]",
	Short: "Ingests excerpts into the library cache",
	Long:  `Reads every midi file in the input dir, normalizes and pads each one to a bar, and caches the library for generate --cached.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := constants.GetInputDir()
		if len(args) == 1 {
			dir = args[0]
		}
		return Index(dir, constants.GetCachePath())
	},
}

func Index(inputDir, cachePath string) error {
	lib, err := midi.ReadLibrary(inputDir)
	if err != nil {
		return err
	}
	entry, err := cache.Save(cachePath, inputDir, lib)
	if err != nil {
		return err
	}
	fmt.Printf("Cached %v excerpts from %v as %v (%v)\n", lib.Len(), inputDir, cachePath, entry.ID)
	return nil
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/aleatoric/midi"
	"github.com/spf13/cobra"
)

var inspectEvents bool

func init() {
	inspectCmd.Flags().BoolVar(&inspectEvents, "events", false, "list every note event")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a midi file",
	Long:  `Prints the tempo, resolution and per-track note content of a midi file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Inspect(os.Stdout, args[0], inspectEvents)
	},
}

func Inspect(w io.Writer, path string, events bool) error {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}

	summary := midi.Summarize(parsed)
	fmt.Fprintf(w, "resolution: %v\n", summary.Resolution)
	fmt.Fprintf(w, "bpm: %v\n", summary.BPM)
	for i, t := range summary.Tracks {
		fmt.Fprintf(w, "track %v: %q program=%v note_on=%v note_off=%v ticks=%v\n",
			i, t.Name, t.Program, t.NoteOns, t.NoteOffs, t.Ticks)
		if !events {
			continue
		}
		for _, evt := range t.NoteSteps {
			fmt.Fprintf(w, "  %v\n", evt)
		}
	}
	return nil
}

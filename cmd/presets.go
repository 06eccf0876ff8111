package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/aleatoric/instrument"
	"github.com/jsphweid/aleatoric/probability"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(presetsCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Lists probability presets and instruments",
	Long:  `Lists probability presets and instruments`,
	Run: func(cmd *cobra.Command, args []string) {
		Presets(os.Stdout)
	},
}

func Presets(w io.Writer) {
	fmt.Fprintln(w, "Probability presets:")
	for _, p := range probability.Presets() {
		fmt.Fprintf(w, "  %v\n", p.Name)
	}

	fmt.Fprintln(w, "Instruments:")
	for _, c := range instrument.Categories() {
		fmt.Fprintf(w, "  %v\n", c.Name)
		for _, inst := range c.Instruments {
			fmt.Fprintf(w, "    %3d %v\n", inst.Program, inst.Name)
		}
	}
}

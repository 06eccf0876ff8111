package constants

import "os"

func GetInputDir() string {
	path := os.Getenv("INPUT_PATH")
	if path != "" {
		return path
	}
	return "./input"
}

func GetOutputDir() string {
	path := os.Getenv("OUTPUT_PATH")
	if path != "" {
		return path
	}
	return "./output"
}

func GetCachePath() string {
	path := os.Getenv("CACHE_PATH")
	if path != "" {
		return path
	}
	return "./out/library.dat"
}

// every excerpt is normalized to exactly one 4/4 bar at this resolution
const TicksPerBeat = 480
const BeatsPerBar = 4
const TicksPerBar = TicksPerBeat * BeatsPerBar

const DefaultBPM = 120
const DefaultLength = 16
const MaxLength = 1024
const MaxTracks = 6
const MaxOctave = 7

const DefaultCompositionName = "Generated_Excerpt"
const SilenceName = "Silence"
const LibraryName = "Input_Excerpts"

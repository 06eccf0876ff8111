package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jsphweid/aleatoric/constants"
	"github.com/jsphweid/aleatoric/model"
	"github.com/jsphweid/aleatoric/probability"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const DefaultInstrument = "Acoustic Grand Piano"
const DefaultOctave = 4

// TrackConfig describes one track. Probabilities, when present, win over
// Distribution.
type TrackConfig struct {
	Name          string    `yaml:"name" json:"name"`
	Instrument    string    `yaml:"instrument" json:"instrument"`
	Octave        int       `yaml:"octave" json:"octave"`
	Distribution  string    `yaml:"distribution,omitempty" json:"distribution,omitempty"`
	P             float64   `yaml:"p,omitempty" json:"p,omitempty"`
	Probabilities []float64 `yaml:"probabilities,omitempty,flow" json:"probabilities,omitempty"`
}

type Config struct {
	Name      string        `yaml:"name" json:"name"`
	BPM       int           `yaml:"bpm" json:"bpm"`
	Length    int           `yaml:"length" json:"length"`
	MaxTracks int           `yaml:"max_tracks" json:"max_tracks"`
	Seed      *int64        `yaml:"seed,omitempty" json:"seed,omitempty"`
	InputDir  string        `yaml:"input_dir,omitempty" json:"-"`
	OutputDir string        `yaml:"output_dir,omitempty" json:"-"`
	Tracks    []TrackConfig `yaml:"tracks" json:"tracks"`
}

func defaultTracks() []TrackConfig {
	tracks := make([]TrackConfig, constants.MaxTracks)
	for i := range tracks {
		tracks[i] = TrackConfig{
			Name:         fmt.Sprintf("Track %d", i+1),
			Instrument:   DefaultInstrument,
			Octave:       DefaultOctave,
			Distribution: "uniform",
		}
	}
	return tracks
}

func Default() *Config {
	return &Config{
		Name:      constants.DefaultCompositionName,
		BPM:       constants.DefaultBPM,
		Length:    constants.DefaultLength,
		MaxTracks: constants.MaxTracks,
		InputDir:  constants.GetInputDir(),
		OutputDir: constants.GetOutputDir(),
		Tracks:    defaultTracks(),
	}
}

// Load reads a YAML composition file on top of the defaults. An empty path
// or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrapf(err, "could not read config %v", path)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	cfg := withoutTracks()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "could not parse config")
	}
	cfg.fillTracks()
	return cfg, nil
}

// ParseJSON accepts the same document as JSON, for the HTTP API.
func ParseJSON(data []byte) (*Config, error) {
	cfg := withoutTracks()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "could not parse config")
	}
	cfg.fillTracks()
	return cfg, nil
}

// withoutTracks is Default with no tracks, so a decoded track list replaces
// the defaults instead of being merged into them.
func withoutTracks() *Config {
	cfg := Default()
	cfg.Tracks = nil
	return cfg
}

func (c *Config) fillTracks() {
	if c.Tracks == nil {
		c.Tracks = defaultTracks()
	}
	for i := range c.Tracks {
		if c.Tracks[i].Name != "" {
			continue
		}
		if c.Tracks[i].Instrument != "" {
			c.Tracks[i].Name = c.Tracks[i].Instrument
		} else {
			c.Tracks[i].Name = fmt.Sprintf("Track %d", i+1)
		}
	}
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "could not encode config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "could not write config %v", path)
}

func (c *Config) Validate() error {
	if c.BPM <= 0 {
		return errors.Errorf("bpm must be positive, got %v", c.BPM)
	}
	if c.Length <= 0 || c.Length > constants.MaxLength {
		return errors.Errorf("length must be within 1..%v, got %v", constants.MaxLength, c.Length)
	}
	if c.MaxTracks < 1 || c.MaxTracks > constants.MaxTracks {
		return errors.Errorf("max_tracks must be within 1..%v, got %v", constants.MaxTracks, c.MaxTracks)
	}
	if len(c.Tracks) == 0 {
		return errors.New("at least one track is required")
	}
	for _, t := range c.Tracks {
		if t.Octave < 0 || t.Octave > constants.MaxOctave {
			return errors.Errorf("track %q: octave must be within 0..%v, got %v", t.Name, constants.MaxOctave, t.Octave)
		}
		if t.Probabilities == nil {
			if _, err := probability.FromKind(t.Distribution, t.P); err != nil {
				return errors.Wrapf(err, "track %q", t.Name)
			}
		}
	}
	return nil
}

// SeedOrNow returns the configured seed, or a time based one.
func (c *Config) SeedOrNow() int64 {
	if c.Seed != nil {
		return *c.Seed
	}
	return time.Now().UnixNano()
}

// Build turns the config into a composition and one track per entry, each
// holding its own copy of lib with octave, instrument and weights applied.
func (c *Config) Build(lib model.ExcerptLibrary) (*model.Composition, []*model.Track, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}

	comp := model.NewComposition(c.Name)
	if err := comp.SetBPM(c.BPM); err != nil {
		return nil, nil, err
	}
	if err := comp.SetLength(c.Length); err != nil {
		return nil, nil, err
	}
	if err := comp.SetMaxTracks(c.MaxTracks); err != nil {
		return nil, nil, err
	}

	var tracks []*model.Track
	for _, tc := range c.Tracks {
		track := model.NewTrack(tc.Name, lib)
		track.SetInstrument(tc.Instrument)
		track.SetOctave(tc.Octave)

		var err error
		if tc.Probabilities != nil {
			err = track.AssignProbabilities(tc.Probabilities)
		} else {
			var dist probability.Distribution
			dist, err = probability.FromKind(tc.Distribution, tc.P)
			if err == nil {
				err = track.ApplyDistribution(dist)
			}
		}
		if err != nil {
			return nil, nil, err
		}
		tracks = append(tracks, track)
	}
	return comp, tracks, nil
}

package model

import (
	"github.com/jsphweid/aleatoric/instrument"
	"github.com/jsphweid/aleatoric/probability"
	"github.com/jsphweid/aleatoric/util"
	"github.com/pkg/errors"
)

// Track is one instrument line. It owns a private copy of the library so
// octave changes never reach the shared original or sibling tracks.
type Track struct {
	Name          string
	Instrument    string
	InstrumentID  uint8
	Octave        int
	Probabilities []float64
	Excerpts      []Excerpt

	// base is the untransposed copy; library is base shifted to Octave
	base    ExcerptLibrary
	library ExcerptLibrary
}

// NewTrack copies lib and starts with uniform probabilities.
func NewTrack(name string, lib ExcerptLibrary) *Track {
	t := &Track{
		Name:    name,
		base:    lib.Clone(),
		library: lib.Clone(),
	}
	t.Probabilities = probability.Uniform(t.library.Len())
	return t
}

func (t *Track) Library() ExcerptLibrary {
	return t.library
}

// SetInstrument resolves name through the instrument table. Unknown names
// select program 0.
func (t *Track) SetInstrument(name string) {
	t.Instrument = name
	t.InstrumentID, _ = instrument.Lookup(name)
}

// AssignProbabilities replaces the weights. A vector of the wrong length is
// rejected and the previous weights are kept. Individual entries are not
// range checked; CheckProbabilities gates generation.
func (t *Track) AssignProbabilities(dist []float64) error {
	if len(dist) != t.library.Len() {
		return errors.Wrapf(ErrProbabilityLength, "track %q: got %v, library has %v", t.Name, len(dist), t.library.Len())
	}
	t.Probabilities = append([]float64(nil), dist...)
	return nil
}

func (t *Track) ApplyDistribution(d probability.Distribution) error {
	return t.AssignProbabilities(d(t.library.Len()))
}

func (t *Track) ProbabilitySum() float64 {
	return util.Sum(t.Probabilities)
}

func (t *Track) CheckProbabilities() bool {
	return probability.SumsToOne(t.ProbabilitySum())
}

// Validate reports whether the track can be generated from.
func (t *Track) Validate() error {
	if t.library.Empty() {
		return errors.Wrapf(ErrEmptyLibrary, "track %q", t.Name)
	}
	if len(t.Probabilities) != t.library.Len() {
		return errors.Wrapf(ErrProbabilityLength, "track %q", t.Name)
	}
	if !t.CheckProbabilities() {
		return &ProbabilitySumError{Track: t.Name, Sum: t.ProbabilitySum()}
	}
	return nil
}

// SetOctave re-anchors the whole library copy so its lowest pitch class lands
// in octave n. It always starts from the untransposed copy, so calling it
// again with another octave does not accumulate.
func (t *Track) SetOctave(n int) {
	t.Octave = n
	lib := t.base.Clone()
	min, ok := lib.MinPitch()
	if !ok {
		t.library = lib
		return
	}

	shift := (n+1)*12 - octaveFloor(int(min))
	for i := range lib.Excerpts {
		events := lib.Excerpts[i].Events
		for j, evt := range events {
			events[j] = evt.WithPitch(int(evt.Pitch) + shift)
		}
	}
	t.library = lib
}

// ClearExcerpts drops any previously assembled excerpts.
func (t *Track) ClearExcerpts() {
	t.Excerpts = nil
}

// AddExcerpt appends a private copy of e.
func (t *Track) AddExcerpt(e Excerpt) {
	t.Excerpts = append(t.Excerpts, e.Clone())
}

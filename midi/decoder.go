package midi

import (
	"log/slog"

	"github.com/jsphweid/aleatoric/constants"
	"github.com/jsphweid/aleatoric/model"
	"github.com/jsphweid/aleatoric/util"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadLibrary ingests every midi file directly inside dir, in sorted order,
// behind the silence excerpt. Any unparsable file fails the whole run.
func ReadLibrary(dir string) (*model.ExcerptLibrary, error) {
	paths, err := util.GatherMidiPaths(dir)
	if err != nil {
		return nil, err
	}

	lib := model.NewLibrary(constants.LibraryName)
	for i, path := range paths {
		slog.Info("processing midi file", "n", i+1, "of", len(paths), "path", path)
		excerpt, err := ReadExcerpt(path)
		if err != nil {
			return nil, err
		}
		lib.Add(excerpt)
	}
	return lib, nil
}

// ReadExcerpt parses one file into a normalized, padded excerpt named after
// the file.
func ReadExcerpt(path string) (model.Excerpt, error) {
	parsed, err := ReadMidiFile(path)
	if err != nil {
		return model.Excerpt{}, &model.ParseError{Path: path, Err: err}
	}

	excerpt, err := ExcerptFromSMF(util.BaseName(path), parsed)
	if err != nil {
		return model.Excerpt{}, &model.ParseError{Path: path, Err: err}
	}
	excerpt.Normalize()
	excerpt.Pad()

	slog.Debug("read excerpt", "name", excerpt.Name, "events", len(excerpt.Events), "ticks", excerpt.Length())
	return excerpt, nil
}

// ExcerptFromSMF keeps only note-on/note-off events, track after track. Time
// spent on dropped events is carried into the next kept event, and ticks are
// rescaled to the fixed resolution.
func ExcerptFromSMF(name string, s *smf.SMF) (model.Excerpt, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok || ticks == 0 {
		return model.Excerpt{}, errors.Errorf("unsupported time format %v", s.TimeFormat)
	}
	resolution := uint64(ticks)

	excerpt := model.NewExcerpt(name)
	for _, track := range s.Tracks {
		var absTicks uint64
		var lastKept uint64
		for _, event := range track {
			absTicks += uint64(event.Delta)

			evt, ok := noteEvent(event.Message)
			if !ok {
				continue
			}
			scaled := rescale(absTicks, resolution)
			evt.DeltaTicks = uint32(scaled - lastKept)
			lastKept = scaled
			excerpt.Add(evt)
		}
	}
	return excerpt, nil
}

func noteEvent(msg smf.Message) (model.NoteEvent, bool) {
	var channel, key, velocity uint8
	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		return model.NoteEvent{Kind: model.NoteOn, Channel: channel, Pitch: key, Velocity: velocity}, true
	case msg.GetNoteOff(&channel, &key, &velocity):
		return model.NoteEvent{Kind: model.NoteOff, Channel: channel, Pitch: key, Velocity: velocity}, true
	}
	return model.NoteEvent{}, false
}

func rescale(absTicks, resolution uint64) uint64 {
	if resolution == constants.TicksPerBeat {
		return absTicks
	}
	return (absTicks*constants.TicksPerBeat + resolution/2) / resolution
}

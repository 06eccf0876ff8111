package midi

import (
	"io"
	"log/slog"
	"os"

	"github.com/jsphweid/aleatoric/constants"
	"github.com/jsphweid/aleatoric/model"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const maxTempo = 0xFFFFFF

func meta(typ byte, data ...byte) smf.Message {
	msg := smf.Message{0xFF, typ, byte(len(data))}
	return append(msg, data...)
}

func tempo(microseconds uint32) smf.Message {
	return meta(0x51, byte(microseconds>>16), byte(microseconds>>8), byte(microseconds))
}

// 4/4, 24 clocks per click, 8 notated 32nds per beat
var timeSignature = meta(0x58, 4, 2, 24, 8)

var keyOfC = meta(0x59, 0, 0)

var portZero = meta(0x21, 0)

// TrackPreamble is the fixed block written after each track name. Notation
// software expects these exact values.
func TrackPreamble(program uint8) [][]byte {
	return [][]byte{
		keyOfC,
		gomidi.ControlChange(0, 121, 0),
		gomidi.ControlChange(0, 100, 0),
		gomidi.ControlChange(0, 101, 0),
		gomidi.ControlChange(0, 6, 12),
		gomidi.ControlChange(0, 100, 127),
		gomidi.ControlChange(0, 101, 127),
		gomidi.ProgramChange(0, program),
		gomidi.ControlChange(0, 7, 100),
		gomidi.ControlChange(0, 10, 64),
		gomidi.ControlChange(0, 91, 0),
		gomidi.ControlChange(0, 93, 0),
		portZero,
	}
}

// CompositionHeader is written once, at the start of the first track.
func CompositionHeader(c *model.Composition) [][]byte {
	return [][]byte{
		timeSignature,
		tempo(c.TempoMicroseconds()),
	}
}

func noteMessage(evt model.NoteEvent) gomidi.Message {
	if evt.Kind == model.NoteOff {
		return gomidi.NoteOffVelocity(evt.Channel, evt.Pitch, evt.Velocity)
	}
	return gomidi.NoteOn(evt.Channel, evt.Pitch, evt.Velocity)
}

// Encode lays out one smf track per composition track, in order.
func Encode(c *model.Composition) (*smf.SMF, error) {
	if c.BPM <= 0 || c.TempoMicroseconds() > maxTempo {
		return nil, errors.Errorf("bpm %v cannot be encoded as a tempo", c.BPM)
	}

	res := smf.NewSMF1()
	res.TimeFormat = smf.MetricTicks(constants.TicksPerBeat)
	res.NoRunningStatus = true

	for i, t := range c.Tracks {
		var track smf.Track
		if i == 0 {
			for _, msg := range CompositionHeader(c) {
				track.Add(0, msg)
			}
		}
		track.Add(0, smf.MetaTrackSequenceName(t.Name))
		for _, msg := range TrackPreamble(t.InstrumentID) {
			track.Add(0, msg)
		}
		for _, excerpt := range t.Excerpts {
			for _, evt := range excerpt.Events {
				track.Add(evt.DeltaTicks, noteMessage(evt))
			}
		}
		track.Close(1)

		if err := res.Add(track); err != nil {
			return nil, errors.Wrapf(err, "error adding track %v", t.Name)
		}
	}
	return res, nil
}

func Write(w io.Writer, c *model.Composition) error {
	encoded, err := Encode(c)
	if err != nil {
		return err
	}
	_, err = encoded.WriteTo(w)
	return err
}

// WriteFile writes the composition to <dir>/<sanitized name>.mid, creating dir
// if needed, and returns the written path.
func WriteFile(dir string, c *model.Composition) (string, error) {
	path := c.OutputPath(dir)
	encoded, err := Encode(c)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", &model.EncodeError{Path: path, Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		return "", &model.EncodeError{Path: path, Err: err}
	}
	defer f.Close()

	if _, err := encoded.WriteTo(f); err != nil {
		return "", &model.EncodeError{Path: path, Err: err}
	}
	slog.Info("wrote composition", "path", path, "tracks", len(c.Tracks))
	return path, nil
}

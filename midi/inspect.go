package midi

import (
	"github.com/jsphweid/aleatoric/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

type TrackSummary struct {
	Name      string
	Program   int
	NoteOns   int
	NoteOffs  int
	Ticks     uint64
	NoteSteps []model.NoteEvent
}

type Summary struct {
	Resolution uint16
	BPM        float64
	Tracks     []TrackSummary
}

// Summarize describes the note content of a parsed file, track by track.
// Program is -1 when a track never changes program.
func Summarize(s *smf.SMF) Summary {
	var res Summary
	if ticks, ok := s.TimeFormat.(smf.MetricTicks); ok {
		res.Resolution = uint16(ticks)
	}

	for _, track := range s.Tracks {
		ts := TrackSummary{Program: -1}
		var pending uint32
		for _, event := range track {
			ts.Ticks += uint64(event.Delta)
			pending += event.Delta

			var name string
			var bpm float64
			var channel, program uint8
			switch {
			case event.Message.GetMetaTrackName(&name):
				ts.Name = name
			case event.Message.GetMetaTempo(&bpm):
				if res.BPM == 0 {
					res.BPM = bpm
				}
			case event.Message.GetProgramChange(&channel, &program):
				ts.Program = int(program)
			}

			evt, ok := noteEvent(event.Message)
			if !ok {
				continue
			}
			if evt.Kind == model.NoteOn {
				ts.NoteOns++
			} else {
				ts.NoteOffs++
			}
			evt.DeltaTicks = pending
			pending = 0
			ts.NoteSteps = append(ts.NoteSteps, evt)
		}
		res.Tracks = append(res.Tracks, ts)
	}
	return res
}

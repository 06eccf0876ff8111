package model

import (
	"github.com/jsphweid/aleatoric/constants"
)

type Excerpt struct {
	Name   string
	Events []NoteEvent
}

func NewExcerpt(name string) Excerpt {
	return Excerpt{Name: name}
}

// SilenceExcerpt is one bar of nothing: a single silent note-on spanning the bar.
func SilenceExcerpt() Excerpt {
	e := NewExcerpt(constants.SilenceName)
	e.Add(silentEvent(constants.TicksPerBar))
	return e
}

func (e *Excerpt) Add(evt NoteEvent) {
	e.Events = append(e.Events, evt)
}

// Length is the summed delta time of all events in ticks.
func (e Excerpt) Length() uint64 {
	var total uint64
	for _, evt := range e.Events {
		total += uint64(evt.DeltaTicks)
	}
	return total
}

func (e Excerpt) MinPitch() (uint8, bool) {
	if len(e.Events) == 0 {
		return 0, false
	}
	min := e.Events[0].Pitch
	for _, evt := range e.Events[1:] {
		if evt.Pitch < min {
			min = evt.Pitch
		}
	}
	return min, true
}

// Normalize moves the excerpt down by whole octaves so the lowest note sits in
// the bottom octave (pitch 0..11) while keeping its pitch class.
func (e *Excerpt) Normalize() {
	min, ok := e.MinPitch()
	if !ok {
		return
	}
	offset := octaveFloor(int(min))
	for i, evt := range e.Events {
		e.Events[i] = evt.WithPitch(int(evt.Pitch) - offset)
	}
}

// Pad appends a silent note-on so the excerpt lasts exactly one bar. Excerpts
// that are already a bar or longer are left alone.
func (e *Excerpt) Pad() {
	length := e.Length()
	if length < constants.TicksPerBar {
		e.Add(silentEvent(uint32(constants.TicksPerBar - length)))
	}
}

func (e Excerpt) Clone() Excerpt {
	events := make([]NoteEvent, len(e.Events))
	copy(events, e.Events)
	return Excerpt{Name: e.Name, Events: events}
}

func octaveFloor(pitch int) int {
	// pitches are never negative here, so integer division is a floor
	return 12 * (pitch / 12)
}

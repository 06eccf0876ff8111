package model

import (
	"fmt"

	"github.com/jsphweid/aleatoric/util"
)

type EventKind uint8

const (
	NoteOn EventKind = iota
	NoteOff
)

func (k EventKind) String() string {
	if k == NoteOff {
		return "note_off"
	}
	return "note_on"
}

const MaxPitch = 127
const MaxVelocity = 127

// NoteEvent is a single timed note-on/note-off. It is a value type; transforms
// return a new event rather than modifying the receiver.
type NoteEvent struct {
	Kind       EventKind
	Channel    uint8
	Pitch      uint8
	Velocity   uint8
	DeltaTicks uint32
}

// WithPitch returns a copy of the event with its pitch clamped into [0,127].
func (e NoteEvent) WithPitch(pitch int) NoteEvent {
	e.Pitch = uint8(util.Clamp(pitch, 0, MaxPitch))
	return e
}

func (e NoteEvent) String() string {
	return fmt.Sprintf("%v ch=%v pitch=%v vel=%v delta=%v", e.Kind, e.Channel, e.Pitch, e.Velocity, e.DeltaTicks)
}

func silentEvent(deltaTicks uint32) NoteEvent {
	return NoteEvent{Kind: NoteOn, DeltaTicks: deltaTicks}
}

package model

import (
	"math"
	"path/filepath"

	"github.com/jsphweid/aleatoric/constants"
	"github.com/jsphweid/aleatoric/util"
	"github.com/pkg/errors"
)

type Composition struct {
	Name      string
	BPM       int
	Length    int
	MaxTracks int
	Tracks    []*Track
}

func NewComposition(name string) *Composition {
	return &Composition{
		Name:      name,
		BPM:       constants.DefaultBPM,
		Length:    constants.DefaultLength,
		MaxTracks: constants.MaxTracks,
	}
}

func (c *Composition) SetBPM(bpm int) error {
	if bpm <= 0 {
		return errors.Errorf("bpm must be positive, got %v", bpm)
	}
	c.BPM = bpm
	return nil
}

func (c *Composition) SetLength(length int) error {
	if length <= 0 || length > constants.MaxLength {
		return errors.Errorf("length must be within 1..%v, got %v", constants.MaxLength, length)
	}
	c.Length = length
	return nil
}

func (c *Composition) SetMaxTracks(n int) error {
	if n < 1 || n > constants.MaxTracks {
		return errors.Errorf("max tracks must be within 1..%v, got %v", constants.MaxTracks, n)
	}
	c.MaxTracks = n
	return nil
}

func (c *Composition) Sanitize() {
	c.Name = util.SanitizeName(c.Name)
}

func (c *Composition) Filename() string {
	return util.SanitizeName(c.Name) + ".mid"
}

func (c *Composition) OutputPath(dir string) string {
	return filepath.Join(dir, c.Filename())
}

// TempoMicroseconds is the length of one beat in microseconds.
func (c *Composition) TempoMicroseconds() uint32 {
	return uint32(math.Round(60_000_000 / float64(c.BPM)))
}

package model

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrEmptyLibrary = errors.New("library has no excerpts besides silence")

var ErrProbabilityLength = errors.New("probability count does not match library size")

// ParseError means an input file could not be read as a midi file. It aborts
// the whole ingestion run.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse midi file %v: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type ProbabilitySumError struct {
	Track string
	Sum   float64
}

func (e *ProbabilitySumError) Error() string {
	return fmt.Sprintf("track %q probabilities sum to %v (off by %+v)", e.Track, e.Sum, e.Deviation())
}

func (e *ProbabilitySumError) Deviation() float64 {
	return e.Sum - 1
}

// EncodeError wraps failures writing the output file.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("could not write %v: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

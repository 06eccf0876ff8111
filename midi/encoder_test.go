package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/aleatoric/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2/smf"
)

func silenceComposition(name string, trackNames ...string) *model.Composition {
	c := model.NewComposition(name)
	lib := model.NewLibrary("lib")
	for _, tn := range trackNames {
		track := model.NewTrack(tn, *lib)
		track.SetInstrument("Flute")
		track.AddExcerpt(lib.Excerpts[0])
		c.Tracks = append(c.Tracks, track)
	}
	return c
}

func messages(track smf.Track) [][]byte {
	var res [][]byte
	for _, evt := range track {
		res = append(res, []byte(evt.Message))
	}
	return res
}

func TestEncodeSilenceOnlyLayout(t *testing.T) {
	encoded, err := Encode(silenceComposition("song", "Track 1"))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(encoded.Tracks, 1)

	track := encoded.Tracks[0]
	msgs := messages(track)
	assert.Len(msgs, 18)
	assert.Equal([]byte{0xFF, 0x58, 0x04, 4, 2, 24, 8}, msgs[0])
	assert.Equal([]byte{0xFF, 0x51, 0x03, 0x07, 0xA1, 0x20}, msgs[1])
	assert.Equal([]byte(smf.MetaTrackSequenceName("Track 1")), msgs[2])
	assert.Equal(TrackPreamble(73), msgs[3:16])
	assert.Equal([]byte{0x90, 0, 0}, msgs[16])
	assert.Equal(uint32(1920), track[16].Delta)
	assert.Equal([]byte{0xFF, 0x2F, 0x00}, msgs[17])
	assert.Equal(uint32(1), track[17].Delta)
}

func TestTrackPreambleValues(t *testing.T) {
	assert.Equal(t, [][]byte{
		{0xFF, 0x59, 0x02, 0x00, 0x00},
		{0xB0, 121, 0},
		{0xB0, 100, 0},
		{0xB0, 101, 0},
		{0xB0, 6, 12},
		{0xB0, 100, 127},
		{0xB0, 101, 127},
		{0xC0, 42},
		{0xB0, 7, 100},
		{0xB0, 10, 64},
		{0xB0, 91, 0},
		{0xB0, 93, 0},
		{0xFF, 0x21, 0x01, 0x00},
	}, TrackPreamble(42))
}

func TestEncodeOnlyFirstTrackCarriesHeader(t *testing.T) {
	encoded, err := Encode(silenceComposition("song", "one", "two"))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(encoded.Tracks, 2)
	second := messages(encoded.Tracks[1])
	assert.Len(second, 16)
	assert.Equal([]byte(smf.MetaTrackSequenceName("two")), second[0])
}

func TestEncodeNoteMessages(t *testing.T) {
	c := silenceComposition("song", "one")
	c.Tracks[0].Excerpts = []model.Excerpt{{Name: "x", Events: []model.NoteEvent{
		{Kind: model.NoteOn, Channel: 2, Pitch: 60, Velocity: 90, DeltaTicks: 0},
		{Kind: model.NoteOff, Channel: 2, Pitch: 60, Velocity: 40, DeltaTicks: 1920},
	}}}

	encoded, err := Encode(c)

	assert := assert.New(t)
	assert.NoError(err)
	msgs := messages(encoded.Tracks[0])
	assert.Equal([]byte{0x92, 60, 90}, msgs[16])
	assert.Equal([]byte{0x82, 60, 40}, msgs[17])
}

func TestWriteBytesAndReadBack(t *testing.T) {
	var buf bytes.Buffer
	assert := assert.New(t)
	assert.NoError(Write(&buf, silenceComposition("song", "one", "two")))

	raw := buf.Bytes()
	assert.True(bytes.HasPrefix(raw, []byte("MThd")))
	assert.Equal([]byte{0x00, 0x01}, raw[8:10])
	assert.True(bytes.Contains(raw, []byte{
		0x00, 0xFF, 0x58, 0x04, 0x04, 0x02, 0x18, 0x08,
		0x00, 0xFF, 0x51, 0x03, 0x07, 0xA1, 0x20,
	}))
	assert.True(bytes.Contains(raw, []byte{
		0x00, 0xFF, 0x59, 0x02, 0x00, 0x00,
		0x00, 0xB0, 0x79, 0x00,
		0x00, 0xB0, 0x64, 0x00,
		0x00, 0xB0, 0x65, 0x00,
		0x00, 0xB0, 0x06, 0x0C,
		0x00, 0xB0, 0x64, 0x7F,
		0x00, 0xB0, 0x65, 0x7F,
		0x00, 0xC0, 0x49,
		0x00, 0xB0, 0x07, 0x64,
		0x00, 0xB0, 0x0A, 0x40,
		0x00, 0xB0, 0x5B, 0x00,
		0x00, 0xB0, 0x5D, 0x00,
		0x00, 0xFF, 0x21, 0x01, 0x00,
	}))

	parsed, err := ReadMidi(bytes.NewReader(raw))
	assert.NoError(err)
	summary := Summarize(parsed)
	assert.Equal(uint16(480), summary.Resolution)
	assert.InDelta(120.0, summary.BPM, 1e-9)
	assert.Len(summary.Tracks, 2)
	assert.Equal("one", summary.Tracks[0].Name)
	assert.Equal("two", summary.Tracks[1].Name)
	assert.Equal(73, summary.Tracks[1].Program)
}

func TestWriteFileSanitizesAndCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	c := silenceComposition("My Song #1!", "one")

	path, err := WriteFile(dir, c)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(filepath.Join(dir, "My_Song__1_.mid"), path)
	_, err = os.Stat(path)
	assert.NoError(err)
}

func TestWriteFileUnwritableDestination(t *testing.T) {
	blocked := filepath.Join(t.TempDir(), "blocked")
	assert.NoError(t, os.WriteFile(blocked, nil, 0644))

	_, err := WriteFile(filepath.Join(blocked, "sub"), silenceComposition("song", "one"))

	var encErr *model.EncodeError
	assert.True(t, errors.As(err, &encErr))
}

func TestEncodeRejectsUnencodableTempo(t *testing.T) {
	c := silenceComposition("song", "one")
	c.BPM = 3
	_, err := Encode(c)
	assert.Error(t, err)
}

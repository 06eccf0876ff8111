package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"My Song #1!":      "My_Song__1_",
		"already_fine-1.0": "already_fine-1.0",
		"":                 "",
		"ção":              "__o",
	}

	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, SanitizeName(in))
		})
	}
}

func TestGatherMidiPathsIsSortedAndFlat(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mid", "a.MIDI", "c.txt", "d.mid"} {
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	assert.NoError(t, os.Mkdir(filepath.Join(dir, "nested.mid"), 0755))

	paths, err := GatherMidiPaths(dir)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal([]string{
		filepath.Join(dir, "a.MIDI"),
		filepath.Join(dir, "b.mid"),
		filepath.Join(dir, "d.mid"),
	}, paths)
}

func TestGatherMidiPathsMissingDir(t *testing.T) {
	_, err := GatherMidiPaths(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestBaseName(t *testing.T) {
	assert.Equal(t, "riff", BaseName("/some/where/riff.mid"))
	assert.Equal(t, "a.b", BaseName("a.b.midi"))
}

func TestNumericHelpers(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(6, Sum([]int{1, 2, 3}))
	assert.InDelta(1.0, Sum([]float64{0.25, 0.75}), 1e-12)
	assert.Equal(0, Clamp(-4, 0, 127))
	assert.Equal(127, Clamp(200, 0, 127))
	assert.Equal(64, Clamp(64, 0, 127))
	assert.Equal(2, Min(2, 3))
}

func TestBinaryRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "data.dat")
	in := map[string][]int{"x": {1, 2}}

	assert := assert.New(t)
	assert.NoError(CreateBinary(path, in))
	out, err := ReadBinary[map[string][]int](path)
	assert.NoError(err)
	assert.Equal(in, out)
}

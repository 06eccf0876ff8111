package cache

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/jsphweid/aleatoric/model"
	"github.com/stretchr/testify/assert"
)

func TestSaveAndLoad(t *testing.T) {
	lib := model.NewLibrary("lib")
	e := model.NewExcerpt("riff")
	e.Add(model.NoteEvent{Kind: model.NoteOn, Channel: 3, Pitch: 5, Velocity: 90, DeltaTicks: 10})
	e.Pad()
	lib.Add(e)
	path := filepath.Join(t.TempDir(), "out", "library.dat")

	saved, err := Save(path, "input", lib)
	assert.NoError(t, err)

	loaded, err := Load(path)

	assert := assert.New(t)
	assert.NoError(err)
	_, err = uuid.Parse(loaded.ID)
	assert.NoError(err)
	assert.Equal(saved.ID, loaded.ID)
	assert.Equal("input", loaded.SourceDir)
	assert.Equal(*lib, loaded.Library)
	assert.True(saved.CreatedAt.Equal(loaded.CreatedAt))
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.dat"))
	assert.Error(t, err)
}

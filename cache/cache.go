package cache

import (
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/aleatoric/model"
	"github.com/jsphweid/aleatoric/util"
)

// Entry is one ingested library as stored on disk.
type Entry struct {
	ID        string
	SourceDir string
	CreatedAt time.Time
	Library   model.ExcerptLibrary
}

func Save(path, sourceDir string, lib *model.ExcerptLibrary) (Entry, error) {
	entry := Entry{
		ID:        uuid.New().String(),
		SourceDir: sourceDir,
		CreatedAt: time.Now().UTC(),
		Library:   lib.Clone(),
	}
	if err := util.CreateBinary(path, entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

func Load(path string) (Entry, error) {
	return util.ReadBinary[Entry](path)
}

package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"go-costing-api/pkg/apperrors"
)

// Store reads and rewrites flat JSON documents under a single data directory.
// Writes are whole-document: read, modify, atomic replace. At most one writer
// process is assumed; concurrent writers would race last-write-wins.
type Store struct {
	dir   string
	cache *gocache.Cache
}

func NewStore(dir string, cacheTTL time.Duration) *Store {
	return &Store{
		dir:   dir,
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// Load decodes the named document into doc. Repeat reads within the cache TTL
// are served from memory; Save invalidates the entry.
func (s *Store) Load(name string, doc any) error {
	if cached, ok := s.cache.Get(name); ok {
		return decode(name, cached.([]byte), doc)
	}

	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return apperrors.DataUnavailable(err, "could not read %s", name)
	}
	if err := decode(name, raw, doc); err != nil {
		return err
	}
	s.cache.Set(name, raw, gocache.DefaultExpiration)
	return nil
}

// Save rewrites the named document in full. The write goes to a temp file in
// the same directory first so a crash never leaves a half-written document.
func (s *Store) Save(name string, doc any) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperrors.DataUnavailable(err, "could not encode %s", name)
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp")
	if err != nil {
		return apperrors.DataUnavailable(err, "could not write %s", name)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return apperrors.DataUnavailable(err, "could not write %s", name)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return apperrors.DataUnavailable(err, "could not write %s", name)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return apperrors.DataUnavailable(err, "could not replace %s", name)
	}

	s.cache.Delete(name)
	return nil
}

func decode(name string, raw []byte, doc any) error {
	if err := json.Unmarshal(raw, doc); err != nil {
		return apperrors.DataUnavailable(err, "could not parse %s", name)
	}
	return nil
}

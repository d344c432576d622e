package state

import (
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"sentwatch/internal/models"
	"sentwatch/internal/providers"
	"sentwatch/internal/state/interfaces"
	"sentwatch/internal/structures"
)

// Store keeps one baseline snapshot file per profile identity under the
// configured state directory. It is the system's only long-lived mutable
// state; everything else is recomputed each run.
type Store struct {
	dir    string
	logger providers.Logger
}

func NewStore(conf *structures.Config, logger providers.Logger) interfaces.StoreInterface {
	return &Store{
		dir:    conf.Persistence.StateDir,
		logger: logger,
	}
}

func (s *Store) path(identity string) string {
	return filepath.Join(s.dir, identity+".json")
}

// Read returns the last persisted snapshot for a profile. A missing file
// means first run; a corrupted file is logged and treated as absent so
// one bad write can never wedge the watcher.
func (s *Store) Read(identity string) *models.Snapshot {
	data, err := os.ReadFile(s.path(identity))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warnf(providers.TypeApp, "Cannot read state for %s: %s", identity, err)
		}
		return models.NewSnapshot()
	}

	snap := models.NewSnapshot()
	if err := json.Unmarshal(data, snap); err != nil {
		s.logger.Warnf(providers.TypeApp, "State file for %s is corrupted, starting fresh: %s", identity, err)
		return models.NewSnapshot()
	}
	snap.Normalize()
	return snap
}

// Write atomically replaces the baseline for a profile. The snapshot is
// written to a temp file, synced and renamed into place so a crash
// mid-write leaves the previous baseline intact.
func (s *Store) Write(identity string, snap *models.Snapshot) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	snap.Normalize()
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	fileName := s.path(identity)
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

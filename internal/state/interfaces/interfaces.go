package interfaces

import (
	"context"
	"time"

	"sentwatch/internal/models"
)

type CompressorInterface interface {
	Compress(val []byte) ([]byte, error)
	Decompress(val []byte) ([]byte, error)
	Close()
}

type SchedulerInterface interface {
	Init()
	Stop()
}

// RunnerInterface is what the scheduler drives: one full watch cycle.
type RunnerInterface interface {
	RunOnce(ctx context.Context) error
}

// StoreInterface owns the per-profile baseline snapshots. Read never
// fails: a missing or corrupted record degrades to an empty snapshot.
type StoreInterface interface {
	Read(identity string) *models.Snapshot
	Write(identity string, snap *models.Snapshot) error
}

// HistoryInterface is the append-only run log. Entries are immutable
// once written.
type HistoryInterface interface {
	Append(at time.Time, entries map[string]*models.Snapshot) (string, error)
	Load(path string) (map[string]*models.Snapshot, error)
}

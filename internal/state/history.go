package state

import (
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"

	"sentwatch/internal/models"
	"sentwatch/internal/providers"
	"sentwatch/internal/state/interfaces"
	"sentwatch/internal/structures"
)

const historyStampLayout = "2006-01-02_15-04-05"

// History writes one immutable, timestamped, compressed file per
// run-with-change, holding every changed profile's snapshot. Files are
// never rewritten after creation.
type History struct {
	dir        string
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewHistory(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) interfaces.HistoryInterface {
	return &History{
		dir:        conf.Persistence.HistoryDir,
		compressor: compressor,
		logger:     logger,
	}
}

func (h *History) Append(at time.Time, entries map[string]*models.Snapshot) (string, error) {
	if err := os.MkdirAll(h.dir, 0o755); err != nil {
		return "", err
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	compressed, err := h.compressor.Compress(data)
	if err != nil {
		return "", err
	}

	fileName := filepath.Join(h.dir, at.Format(historyStampLayout)+".json.zst")
	tmpFile := fileName + ".tmp"
	if err := os.WriteFile(tmpFile, compressed, 0o644); err != nil {
		return "", err
	}
	if err := os.Rename(tmpFile, fileName); err != nil {
		os.Remove(tmpFile)
		return "", err
	}
	return fileName, nil
}

func (h *History) Load(path string) (map[string]*models.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	decompressed, err := h.compressor.Decompress(data)
	if err != nil {
		return nil, err
	}
	entries := make(map[string]*models.Snapshot)
	if err := json.Unmarshal(decompressed, &entries); err != nil {
		return nil, err
	}
	for _, snap := range entries {
		snap.Normalize()
	}
	return entries, nil
}

package testutil

import (
	"context"
	"sync"
	"time"

	"sentwatch/internal/models"
	"sentwatch/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// CountByLevel reports how many entries were recorded at a level.
func (m *MockLogger) CountByLevel(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) SetForever(key string, value []byte) {
	m.Set(key, value)
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

// MockStore implements interfaces.StoreInterface backed by a map.
type MockStore struct {
	mu        sync.Mutex
	Snapshots map[string]*models.Snapshot
	Writes    []string
	WriteErr  error
}

func NewMockStore() *MockStore {
	return &MockStore{Snapshots: make(map[string]*models.Snapshot)}
}

func (m *MockStore) Read(identity string) *models.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	if snap, ok := m.Snapshots[identity]; ok {
		return snap
	}
	return models.NewSnapshot()
}

func (m *MockStore) Write(identity string, snap *models.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Snapshots[identity] = snap
	m.Writes = append(m.Writes, identity)
	return nil
}

// MockHistory implements interfaces.HistoryInterface and records appends.
type MockHistory struct {
	mu      sync.Mutex
	Appends []map[string]*models.Snapshot
	Err     error
}

func (m *MockHistory) Append(at time.Time, entries map[string]*models.Snapshot) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	m.Appends = append(m.Appends, entries)
	return at.Format("2006-01-02_15-04-05") + ".json.zst", nil
}

func (m *MockHistory) Load(path string) (map[string]*models.Snapshot, error) {
	return nil, nil
}

// MockNotifier implements notify.NotifierInterface and records messages.
type MockNotifier struct {
	mu       sync.Mutex
	Messages []string
	Fail     bool
}

func (m *MockNotifier) Send(message string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return false
	}
	m.Messages = append(m.Messages, message)
	return true
}

func (m *MockNotifier) Sent() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Messages))
	copy(out, m.Messages)
	return out
}

// MockWishlistFetcher implements fetch.WishlistFetcherInterface.
type MockWishlistFetcher struct {
	Docs []models.WishlistDocument
	Err  error
}

func (m *MockWishlistFetcher) FetchDocuments(ctx context.Context) ([]models.WishlistDocument, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Docs, nil
}

// MockLeaderboardClient implements fetch.LeaderboardClientInterface.
type MockLeaderboardClient struct {
	Facets map[string]*models.APIFacet
	Err    error
}

func (m *MockLeaderboardClient) Fetch(ctx context.Context, uid string) (*models.APIFacet, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Facets != nil {
		return m.Facets[uid], nil
	}
	return nil, nil
}

// MockConsoleCapturer implements fetch.ConsoleCapturerInterface.
type MockConsoleCapturer struct {
	Lines []string
	Err   error
	Calls int
}

func (m *MockConsoleCapturer) CaptureLines(ctx context.Context, pageURL string, triggerDetail bool) ([]string, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Lines, nil
}

// MockUIDResolver implements fetch.UIDResolverInterface.
type MockUIDResolver struct {
	UIDs map[string]string
	Err  error
}

func (m *MockUIDResolver) Resolve(ctx context.Context, username string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.UIDs[username], nil
}

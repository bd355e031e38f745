package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/blogem/access-monitor/models"
)

// memoryAccessLogRepository keeps entries for the lifetime of the process
type memoryAccessLogRepository struct {
	mu      sync.RWMutex
	clock   clockwork.Clock
	entries []models.AccessLogEntry
	lastID  int64
}

// NewMemoryAccessLogRepository creates an empty in-memory access log repository
func NewMemoryAccessLogRepository(clock clockwork.Clock) AccessLogRepository {
	return &memoryAccessLogRepository{clock: clock}
}

// List returns a copy of all entries, newest first
func (r *memoryAccessLogRepository) List(ctx context.Context) ([]models.AccessLogEntry, error) {
	r.mu.RLock()
	entries := make([]models.AccessLogEntry, len(r.entries))
	copy(entries, r.entries)
	r.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		}
		return entries[i].ID > entries[j].ID
	})

	return entries, nil
}

// Create stores the entry with the next id; a zero Timestamp is set to now
func (r *memoryAccessLogRepository) Create(ctx context.Context, entry *models.AccessLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	entry.ID = r.lastID
	if entry.Timestamp.IsZero() {
		entry.Timestamp = r.clock.Now().UTC()
	}

	stored := *entry
	if entry.ExternalAlertID != nil {
		id := *entry.ExternalAlertID
		stored.ExternalAlertID = &id
	}
	r.entries = append(r.entries, stored)

	return nil
}

// Clear drops all entries; lastID is kept so ids are never reused
func (r *memoryAccessLogRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
	return nil
}

// Count returns the number of stored entries
func (r *memoryAccessLogRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries), nil
}

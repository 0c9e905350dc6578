package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryRepository keeps serialized entries in memory. It goes through the
// same JSON round-trip as the Postgres repository so tests exercise the real
// wire format. Used for tests and DSN-less local runs.
type MemoryRepository struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string][]byte)}
}

func (r *MemoryRepository) Load(ctx context.Context, ownerID string) ([]LineItem, error) {
	r.mu.Lock()
	raw, ok := r.entries[ownerID]
	r.mu.Unlock()

	if !ok {
		return nil, nil
	}

	var lines []LineItem
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptEntry, err)
	}
	return lines, nil
}

func (r *MemoryRepository) Save(ctx context.Context, ownerID string, lines []LineItem) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart entry: %w", err)
	}

	r.mu.Lock()
	r.entries[ownerID] = raw
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) Clear(ctx context.Context, ownerID string) error {
	r.mu.Lock()
	delete(r.entries, ownerID)
	r.mu.Unlock()
	return nil
}

// SetRaw plants an arbitrary persisted entry. Tests use it to simulate a
// corrupt blob.
func (r *MemoryRepository) SetRaw(ownerID string, raw []byte) {
	r.mu.Lock()
	r.entries[ownerID] = raw
	r.mu.Unlock()
}

package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"communibase/internal/domain"
	"communibase/internal/ports/output"
)

var _ output.EventStore = (*EventStore)(nil)

// EventStore implements output.EventStore in memory. Records are stored and
// returned as deep copies.
type EventStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewEventStore() *EventStore {
	return &EventStore{records: map[string][]byte{}}
}

func key(entityType, id string) string {
	return entityType + "/" + id
}

func (s *EventStore) Find(ctx context.Context, entityType, id string) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	raw, ok := s.records[key(entityType, id)]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("find %s %s: %w", entityType, id, domain.ErrEventNotFound)
	}
	record := map[string]any{}
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("decode %s %s: %w", entityType, id, err)
	}
	return record, nil
}

func (s *EventStore) Save(ctx context.Context, entityType, id string, record map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s %s: %w", entityType, id, err)
	}
	s.mu.Lock()
	s.records[key(entityType, id)] = raw
	s.mu.Unlock()
	return nil
}

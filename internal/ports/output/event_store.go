package output

import "context"

// EventStore loads and saves raw event records, keyed by entity type and id.
type EventStore interface {
	// Find returns domain.ErrEventNotFound when no record exists.
	Find(ctx context.Context, entityType, id string) (map[string]any, error)
	Save(ctx context.Context, entityType, id string, record map[string]any) error
}

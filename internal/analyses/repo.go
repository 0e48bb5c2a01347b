package analyses

import "context"

// Repo defines persistence operations for analysis records.
type Repo interface {
	Create(ctx context.Context, record Record) error
	GetByID(ctx context.Context, recordID string) (Record, error)
	ListByKey(ctx context.Context, apiKey string, limit, offset int) ([]Record, error)
}

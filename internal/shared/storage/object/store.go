package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for archiving and retrieving generated
// report artifacts.
type ObjectStore interface {
	Save(ctx context.Context, callerKey string, fileName string, contentType string, r io.Reader) (storageKey string, sizeBytes int64, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}

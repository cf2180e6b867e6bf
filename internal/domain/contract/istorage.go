package contract

import "context"

// IObjectStorage removes stored image objects once their media record is gone.
type IObjectStorage interface {
	DeleteObject(ctx context.Context, key string) error
}

package repository

import "context"

// TxManager runs a function inside one database transaction. Repository
// methods called with the context passed to fn join that transaction;
// an error from fn rolls everything back.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

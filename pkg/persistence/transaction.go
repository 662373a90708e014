//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Transaction=Transaction"
package persistence

import "context"

type Transaction interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error, lockNames ...string) error
	// WithLock asks repositories to lock the rows they read until the transaction ends.
	WithLock(ctx context.Context) context.Context
}

// WithinTransaction runs fn in tx and returns its result.
func WithinTransaction[T any](
	ctx context.Context,
	tx Transaction,
	fn func(ctx context.Context) (T, error),
	lockNames ...string,
) (T, error) {
	var result T
	err := tx.Execute(ctx, func(ctx context.Context) error {
		var err error
		result, err = fn(ctx)
		return err
	}, lockNames...)

	return result, err
}

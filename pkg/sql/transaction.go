package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/klwxsrx/content-admin-service/pkg/persistence"
)

type contextKey int

const (
	dbTransactionContextKey contextKey = iota
	dbTransactionLockContextKey
)

type transaction struct {
	client TxClient
}

func NewTransaction(client TxClient) persistence.Transaction {
	return transaction{client: client}
}

func (t transaction) Execute(
	ctx context.Context,
	fn func(ctx context.Context) error,
	lockNames ...string,
) (err error) {
	tx, hasParentTx := ctx.Value(dbTransactionContextKey).(ClientTx)
	if !hasParentTx {
		tx, err = t.client.Begin(ctx)
		if err != nil {
			return fmt.Errorf("start db transaction: %w", err)
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback()
			}
		}()

		ctx = context.WithValue(ctx, dbTransactionContextKey, tx)
	}

	for _, lockName := range lockNames {
		err = withTransactionLevelLock(ctx, lockName, tx)
		if err != nil {
			return err
		}
	}

	err = fn(ctx)
	if err != nil {
		return err
	}

	if hasParentTx {
		return nil
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func (t transaction) WithLock(ctx context.Context) context.Context {
	return context.WithValue(ctx, dbTransactionLockContextKey, true)
}

// IsLockRequested reports whether the rows read within ctx must be selected "for update".
func IsLockRequested(ctx context.Context) bool {
	if _, inTx := ctx.Value(dbTransactionContextKey).(ClientTx); !inTx {
		return false
	}

	requested, _ := ctx.Value(dbTransactionLockContextKey).(bool)
	return requested
}

type transactionalClient struct {
	client Client
}

// NewTransactionalClient uses the transaction from ctx when there is one.
func NewTransactionalClient(client Client) Client {
	return transactionalClient{client: client}
}

func (c transactionalClient) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.from(ctx).ExecContext(ctx, query, args...)
}

func (c transactionalClient) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return c.from(ctx).GetContext(ctx, dest, query, args...)
}

func (c transactionalClient) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return c.from(ctx).SelectContext(ctx, dest, query, args...)
}

func (c transactionalClient) from(ctx context.Context) Client {
	if tx, ok := ctx.Value(dbTransactionContextKey).(ClientTx); ok {
		return tx
	}
	return c.client
}

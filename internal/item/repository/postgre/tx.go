package postgre

import (
	"context"
	"database/sql"

	repo "item-service/internal/item/repository"
)

// WithTx runs fn against a repository bound to a single transaction.
// Nested calls reuse the outer transaction.
func (r *implRepository) WithTx(ctx context.Context, fn func(ctx context.Context, txRepo repo.ItemRepository) error) (err error) {
	if _, nested := r.q.(*sql.Tx); nested {
		return fn(ctx, r)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("WithTx"), err)
		return repo.ErrFailedToBeginTx
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, &implRepository{db: r.db, q: tx, l: r.l}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.l.Warnf(ctx, "%s rollback: %v", r.dsn("WithTx"), rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("WithTx"), err)
		return repo.ErrFailedToCommitTx
	}
	return nil
}

// Ping checks the underlying pool.
func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

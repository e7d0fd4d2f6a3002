package memory

import (
	"context"
	"maps"
	"slices"

	repo "item-service/internal/item/repository"
)

// WithTx serialises fn against every other transaction and restores the
// previous state when fn fails. Nested calls reuse the outer transaction.
func (r *implRepository) WithTx(ctx context.Context, fn func(ctx context.Context, txRepo repo.ItemRepository) error) error {
	if r.inTx {
		return fn(ctx, r)
	}

	r.txMu.Lock()
	defer r.txMu.Unlock()

	r.s.mu.RLock()
	items, order := maps.Clone(r.s.items), slices.Clone(r.s.order)
	r.s.mu.RUnlock()

	if err := fn(ctx, &implRepository{s: r.s, txMu: r.txMu, inTx: true}); err != nil {
		r.s.mu.Lock()
		r.s.items, r.s.order = items, order
		r.s.mu.Unlock()
		return err
	}
	return nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}

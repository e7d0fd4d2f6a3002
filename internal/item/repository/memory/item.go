package memory

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"item-service/internal/item"
	repo "item-service/internal/item/repository"
)

func (r *implRepository) FindItemByID(ctx context.Context, opt repo.FindItemOptions) (item.Item, error) {
	if err := ctx.Err(); err != nil {
		return item.Item{}, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.items[opt.ID], nil
}

func (r *implRepository) FindAllItems(ctx context.Context) ([]item.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]item.Item, 0, len(r.s.order))
	for _, id := range r.s.order {
		items = append(items, r.s.items[id])
	}
	return items, nil
}

func (r *implRepository) SaveItem(ctx context.Context, opt repo.SaveItemOptions) (item.Item, error) {
	if err := ctx.Err(); err != nil {
		return item.Item{}, err
	}

	id := opt.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	it := item.Item{ID: id, Name: opt.Name, Colour: opt.Colour}

	defer r.lockWrite()()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.items[id]; !ok {
		r.s.order = append(r.s.order, id)
	}
	r.s.items[id] = it
	return it, nil
}

func (r *implRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	defer r.lockWrite()()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.items[id]; !ok {
		return nil
	}
	delete(r.s.items, id)
	r.s.order = slices.DeleteFunc(r.s.order, func(v uuid.UUID) bool { return v == id })
	return nil
}

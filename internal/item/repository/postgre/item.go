package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"item-service/internal/item"
	repo "item-service/internal/item/repository"
)

// FindItemByID retrieves a single Item.
// Returns a zero-value Item (ID == uuid.Nil) and no error when not found.
func (r *implRepository) FindItemByID(ctx context.Context, opt repo.FindItemOptions) (item.Item, error) {
	query, args := r.buildFindByIDQuery(opt)

	var it item.Item
	err := r.q.QueryRowContext(ctx, query, args...).Scan(&it.ID, &it.Name, &it.Colour)
	if errors.Is(err, sql.ErrNoRows) {
		return item.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindItemByID"), err)
		return item.Item{}, repo.ErrFailedToGet
	}
	return it, nil
}

// FindAllItems returns every Item in storage order.
func (r *implRepository) FindAllItems(ctx context.Context) ([]item.Item, error) {
	rows, err := r.q.QueryContext(ctx, selectItemsQuery)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindAllItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	items := []item.Item{}
	for rows.Next() {
		var it item.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Colour); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("FindAllItems"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("FindAllItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// SaveItem inserts a new Item when opt.ID is zero, otherwise upserts the row with that ID.
func (r *implRepository) SaveItem(ctx context.Context, opt repo.SaveItemOptions) (item.Item, error) {
	id, failure := opt.ID, repo.ErrFailedToUpdate
	if id == uuid.Nil {
		id, failure = uuid.New(), repo.ErrFailedToInsert
	}

	var it item.Item
	err := r.q.QueryRowContext(ctx, saveItemQuery, id, opt.Name, opt.Colour).Scan(&it.ID, &it.Name, &it.Colour)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SaveItem"), err)
		return item.Item{}, failure
	}
	return it, nil
}

// DeleteItem removes an Item by ID. Deleting a missing row is not an error.
func (r *implRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if _, err := r.q.ExecContext(ctx, deleteItemQuery, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

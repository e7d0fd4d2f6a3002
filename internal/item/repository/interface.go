package repository

import (
	"context"

	"github.com/google/uuid"

	"item-service/internal/item"
)

// Repository is the composed interface for the item data store.
type Repository interface {
	ItemRepository

	// WithTx runs fn inside one transaction. fn must only use the repository it is given.
	// The transaction is rolled back when fn returns an error and committed otherwise.
	WithTx(ctx context.Context, fn func(ctx context.Context, repo ItemRepository) error) error

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	FindItemByID(ctx context.Context, opt FindItemOptions) (item.Item, error)
	FindAllItems(ctx context.Context) ([]item.Item, error)
	SaveItem(ctx context.Context, opt SaveItemOptions) (item.Item, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

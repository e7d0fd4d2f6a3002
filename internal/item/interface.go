package item

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockery --name UseCase
type UseCase interface {
	CreateItem(ctx context.Context, req CreateItemRequest) (uuid.UUID, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req UpdateItemRequest) error
	GetItem(ctx context.Context, id uuid.UUID) (GetItemResponse, error)
	GetItems(ctx context.Context) (GetItemsResponse, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

package usecase

import (
	"context"

	"github.com/google/uuid"

	"item-service/internal/item"
	repo "item-service/internal/item/repository"
)

// CreateItem validates the request and persists a new Item, returning its generated ID.
func (uc *implUseCase) CreateItem(ctx context.Context, req item.CreateItemRequest) (id uuid.UUID, err error) {
	defer func() { uc.observe(opCreate, err) }()

	if err := uc.validate(req.Name, req.Colour); err != nil {
		return uuid.Nil, err
	}

	var created item.Item
	err = uc.repo.WithTx(ctx, func(ctx context.Context, r repo.ItemRepository) error {
		it, err := r.SaveItem(ctx, repo.SaveItemOptions{
			Name:   req.Name,
			Colour: req.Colour,
		})
		if err != nil {
			return err
		}
		created = it
		return nil
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateItem SaveItem: %v", err)
		return uuid.Nil, err
	}

	uc.l.Infof(ctx, "Item created with id: %s", created.ID)
	return created.ID, nil
}

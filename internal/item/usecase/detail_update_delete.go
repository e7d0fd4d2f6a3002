package usecase

import (
	"context"

	"github.com/google/uuid"

	"item-service/internal/item"
	repo "item-service/internal/item/repository"
)

// GetItem retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) GetItem(ctx context.Context, id uuid.UUID) (out item.GetItemResponse, err error) {
	defer func() { uc.observe(opGet, err) }()

	var found item.Item
	err = uc.repo.WithTx(ctx, func(ctx context.Context, r repo.ItemRepository) error {
		found, err = r.FindItemByID(ctx, repo.FindItemOptions{ID: id})
		return err
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetItem FindItemByID: %v", err)
		return item.GetItemResponse{}, err
	}
	if found.ID == uuid.Nil {
		uc.l.Warnf(ctx, "Item with id: %s not found.", id)
		return item.GetItemResponse{}, item.ErrItemNotFound
	}

	return uc.toGetItemResponse(found), nil
}

// UpdateItem overwrites name and colour of an existing Item.
// Validation runs before the lookup. The row stays locked until the write commits,
// so an update racing a delete never re-creates the record.
func (uc *implUseCase) UpdateItem(ctx context.Context, id uuid.UUID, req item.UpdateItemRequest) (err error) {
	defer func() { uc.observe(opUpdate, err) }()

	if err := uc.validate(req.Name, req.Colour); err != nil {
		return err
	}

	err = uc.repo.WithTx(ctx, func(ctx context.Context, r repo.ItemRepository) error {
		existing, err := r.FindItemByID(ctx, repo.FindItemOptions{ID: id, ForUpdate: true})
		if err != nil {
			uc.l.Errorf(ctx, "uc.UpdateItem FindItemByID: %v", err)
			return err
		}
		if existing.ID == uuid.Nil {
			uc.l.Errorf(ctx, "Item with id: %s not found.", id)
			return item.ErrItemNotFound
		}

		if existing.Name == req.Name && existing.Colour == req.Colour {
			return nil
		}

		if _, err := r.SaveItem(ctx, repo.SaveItemOptions{
			ID:     existing.ID,
			Name:   req.Name,
			Colour: req.Colour,
		}); err != nil {
			uc.l.Errorf(ctx, "uc.UpdateItem SaveItem: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.l.Infof(ctx, "Item updated with id: %s - name: %s - colour: %s", id, req.Name, req.Colour)
	return nil
}

// DeleteItem removes an Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) DeleteItem(ctx context.Context, id uuid.UUID) (err error) {
	defer func() { uc.observe(opDelete, err) }()

	err = uc.repo.WithTx(ctx, func(ctx context.Context, r repo.ItemRepository) error {
		existing, err := r.FindItemByID(ctx, repo.FindItemOptions{ID: id, ForUpdate: true})
		if err != nil {
			uc.l.Errorf(ctx, "uc.DeleteItem FindItemByID: %v", err)
			return err
		}
		if existing.ID == uuid.Nil {
			uc.l.Errorf(ctx, "Item with id: %s not found.", id)
			return item.ErrItemNotFound
		}

		if err := r.DeleteItem(ctx, id); err != nil {
			uc.l.Errorf(ctx, "uc.DeleteItem DeleteItem: %v", err)
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.l.Infof(ctx, "Deleted item with id: %s", id)
	return nil
}

package usecase

import (
	"context"

	"item-service/internal/item"
	repo "item-service/internal/item/repository"
)

// GetItems returns every Item in storage order.
func (uc *implUseCase) GetItems(ctx context.Context) (out item.GetItemsResponse, err error) {
	defer func() { uc.observe(opList, err) }()

	var items []item.Item
	err = uc.repo.WithTx(ctx, func(ctx context.Context, r repo.ItemRepository) error {
		items, err = r.FindAllItems(ctx)
		return err
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetItems FindAllItems: %v", err)
		return item.GetItemsResponse{}, err
	}

	responses := make([]item.GetItemResponse, 0, len(items))
	for _, it := range items {
		responses = append(responses, uc.toGetItemResponse(it))
	}
	return item.GetItemsResponse{ItemResponses: responses}, nil
}

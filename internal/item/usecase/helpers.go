package usecase

import (
	"strings"

	"item-service/internal/item"
	"item-service/internal/metrics"
)

const (
	opCreate = "create"
	opUpdate = "update"
	opGet    = "get"
	opList   = "list"
	opDelete = "delete"
)

// validate rejects a name or colour that is empty once surrounding whitespace is trimmed.
func (uc *implUseCase) validate(name, colour string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(colour) == "" {
		return item.ErrInvalidItem
	}
	return nil
}

func (uc *implUseCase) toGetItemResponse(it item.Item) item.GetItemResponse {
	return item.GetItemResponse{
		ID:     it.ID,
		Name:   it.Name,
		Colour: it.Colour,
	}
}

func (uc *implUseCase) observe(operation string, err error) {
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = item.KindOf(err).String()
	}
	metrics.ItemOperations.WithLabelValues(operation, outcome).Inc()
}

package http

import (
	"github.com/google/uuid"

	"item-service/internal/item"
)

// --- Request DTOs ---

type createReq struct {
	Name   string `json:"name"`
	Colour string `json:"colour"`
}

func (r createReq) toInput() item.CreateItemRequest {
	return item.CreateItemRequest{
		Name:   r.Name,
		Colour: r.Colour,
	}
}

// ---

type updateReq struct {
	ID     uuid.UUID `json:"-"` // populated from URI param
	Name   string    `json:"name"`
	Colour string    `json:"colour"`
}

func (r updateReq) toInput() item.UpdateItemRequest {
	return item.UpdateItemRequest{
		Name:   r.Name,
		Colour: r.Colour,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Colour string    `json:"colour"`
}

func newItemResp(out item.GetItemResponse) itemResp {
	return itemResp{
		ID:     out.ID,
		Name:   out.Name,
		Colour: out.Colour,
	}
}

type listResp struct {
	ItemResponses []itemResp `json:"itemResponses"`
}

func (h *handler) newListResp(out item.GetItemsResponse) listResp {
	items := make([]itemResp, len(out.ItemResponses))
	for i, it := range out.ItemResponses {
		items[i] = newItemResp(it)
	}
	return listResp{ItemResponses: items}
}

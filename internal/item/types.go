package item

import "github.com/google/uuid"

// --- Item Domain Model ---

// Item is the persisted record. Name and Colour are never blank once stored.
type Item struct {
	ID     uuid.UUID
	Name   string
	Colour string
}

// --- UseCase Inputs ---

type CreateItemRequest struct {
	Name   string
	Colour string
}

type UpdateItemRequest struct {
	Name   string
	Colour string
}

// --- UseCase Outputs ---

type GetItemResponse struct {
	ID     uuid.UUID
	Name   string
	Colour string
}

// GetItemsResponse lists items in storage order. ItemResponses is never nil.
type GetItemsResponse struct {
	ItemResponses []GetItemResponse
}

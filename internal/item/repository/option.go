package repository

import "github.com/google/uuid"

// FindItemOptions holds parameters for fetching a single Item.
// Lookups that find nothing return a zero Item (ID == uuid.Nil) and no error.
type FindItemOptions struct {
	ID uuid.UUID
	// ForUpdate locks the row until the surrounding transaction ends.
	ForUpdate bool
}

// SaveItemOptions holds parameters for inserting or updating an Item.
// A zero ID inserts a new row with a generated ID.
type SaveItemOptions struct {
	ID     uuid.UUID
	Name   string
	Colour string
}

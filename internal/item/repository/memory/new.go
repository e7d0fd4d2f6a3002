package memory

import (
	"sync"

	"github.com/google/uuid"

	"item-service/internal/item"
	"item-service/internal/item/repository"
)

// store keeps items in insertion order.
type store struct {
	mu    sync.RWMutex
	items map[uuid.UUID]item.Item
	order []uuid.UUID
}

type implRepository struct {
	s *store
	// txMu serialises writers, standing in for row-level locking.
	txMu *sync.Mutex
	inTx bool
}

// lockWrite takes the writer lock unless the caller already holds it through WithTx.
func (r *implRepository) lockWrite() func() {
	if r.inTx {
		return func() {}
	}
	r.txMu.Lock()
	return r.txMu.Unlock
}

// New creates a process-local Repository. Data does not survive a restart.
func New() repository.Repository {
	return &implRepository{
		s:    &store{items: make(map[uuid.UUID]item.Item)},
		txMu: &sync.Mutex{},
	}
}

package usecase

import (
	"item-service/internal/item/repository"
	"item-service/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}

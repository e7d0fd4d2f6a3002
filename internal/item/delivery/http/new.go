package http

import (
	"github.com/gin-gonic/gin"

	"item-service/internal/item"
	"item-service/pkg/log"
)

// Handler is the public interface for the item HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc item.UseCase
}

// New creates a new HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "item-service/internal/item/delivery/http"
	itemUC "item-service/internal/item/usecase"
)

// setupItemDomain wires the item use case onto the configured repository and
// registers /v1/items.
func (srv *HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := itemUC.New(srv.itemRepo, srv.l)
	h := itemHTTP.New(srv.l, uc)

	itemHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Item domain registered")
	return nil
}

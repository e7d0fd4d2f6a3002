package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"item-service/internal/item"
	pkgErrors "item-service/pkg/errors"
	"item-service/pkg/response"
)

// mapError translates use case errors into HTTP errors from pkg/errors.
// Anything unclassified is returned unchanged and rendered as a 500.
func (h *handler) mapError(err error) error {
	switch item.KindOf(err) {
	case item.KindInvalidInput:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, item.ErrInvalidItem.Error())
	case item.KindNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, item.ErrItemNotFound.Error())
	default:
		return err
	}
}

// renderError logs err at the level its kind calls for and writes the response.
func (h *handler) renderError(ctx context.Context, c *gin.Context, op string, err error) {
	if item.KindOf(err) == item.KindNotFound {
		h.l.Warnf(ctx, "%s: %v", op, err)
	} else {
		h.l.Errorf(ctx, "%s: %v", op, err)
	}
	response.Error(c, h.mapError(err))
}

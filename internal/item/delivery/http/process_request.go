package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgErrors "item-service/pkg/errors"
)

var (
	errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	errInvalidID   = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid item id")
)

// processIDParam parses the :id URI param.
func (h *handler) processIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errInvalidID
	}
	return id, nil
}

// processCreateReq binds the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}

// processUpdateReq binds the update item request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	req.ID = id
	return req, nil
}

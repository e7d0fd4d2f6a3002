package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"item-service/pkg/response"
)

// Create godoc
// @Summary     Create a new item
// @Description Creates a new item. The Location header carries the generated id.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     201
// @Header      201 {string} Location "Item id"
// @Failure     400 {object} response.Resp "Bad Request - name and colour must be set"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /v1/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		h.l.Errorf(ctx, "item.delivery.http.Create: %v", err)
		response.Error(c, err)
		return
	}
	h.l.Infof(ctx, "Received request to create item with name: %s", req.Name)

	id, err := h.uc.CreateItem(ctx, req.toInput())
	if err != nil {
		h.renderError(ctx, c, "uc.CreateItem", err)
		return
	}

	c.Header("Location", id.String())
	c.Status(http.StatusCreated)
	c.Writer.WriteHeaderNow()
}

// List godoc
// @Summary     List items
// @Description Returns every item.
// @Tags        Items
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /v1/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	h.l.Info(ctx, "Retrieving items")

	output, err := h.uc.GetItems(ctx)
	if err != nil {
		h.renderError(ctx, c, "uc.GetItems", err)
		return
	}

	c.JSON(http.StatusOK, h.newListResp(output))
}

// Detail godoc
// @Summary     Get item detail
// @Description Returns a single item by its ID.
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID (UUID)"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Bad Request - malformed id"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /v1/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		h.l.Errorf(ctx, "item.delivery.http.Detail: %v", err)
		response.Error(c, err)
		return
	}
	h.l.Infof(ctx, "Looking up item with id: %s", id)

	output, err := h.uc.GetItem(ctx, id)
	if err != nil {
		h.renderError(ctx, c, "uc.GetItem", err)
		return
	}

	c.JSON(http.StatusOK, newItemResp(output))
}

// Update godoc
// @Summary     Update an item
// @Description Replaces name and colour of an existing item. Both are required.
// @Tags        Items
// @Accept      json
// @Param       id   path string    true "Item ID (UUID)"
// @Param       body body updateReq true "New name and colour"
// @Success     204
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /v1/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		h.l.Errorf(ctx, "item.delivery.http.Update: %v", err)
		response.Error(c, err)
		return
	}
	h.l.Infof(ctx, "Received request to update item with id: %s - name: %s", req.ID, req.Name)

	if err := h.uc.UpdateItem(ctx, req.ID, req.toInput()); err != nil {
		h.renderError(ctx, c, "uc.UpdateItem", err)
		return
	}

	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}

// Delete godoc
// @Summary     Delete an item
// @Description Permanently removes an item by ID.
// @Tags        Items
// @Param       id path string true "Item ID (UUID)"
// @Success     204
// @Failure     400 {object} response.Resp "Bad Request - malformed id"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /v1/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		h.l.Errorf(ctx, "item.delivery.http.Delete: %v", err)
		response.Error(c, err)
		return
	}
	h.l.Infof(ctx, "Deleting item with id: %s", id)

	if err := h.uc.DeleteItem(ctx, id); err != nil {
		h.renderError(ctx, c, "uc.DeleteItem", err)
		return
	}

	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}

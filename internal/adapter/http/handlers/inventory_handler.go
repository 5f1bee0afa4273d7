package handlers

import (
	"net/http"

	request "garage_workflow/internal/adapter/http/dto/request"
	response "garage_workflow/internal/adapter/http/dto/response"
	"garage_workflow/internal/adapter/http/middleware"
	"garage_workflow/internal/usecase"

	"github.com/gin-gonic/gin"
)

const inventoryComponent = "inventory"

type InventoryHandler struct {
	allocator usecase.IInventoryAllocator
}

func NewInventoryHandler(allocator usecase.IInventoryAllocator) *InventoryHandler {
	return &InventoryHandler{allocator: allocator}
}

// CreateItem godoc
// @Summary      Add a part to the catalog
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string                              true  "Tenant"
// @Param        body         body    request.CreateInventoryItemRequest  true  "Item"
// @Success      201  {object}  response.InventoryItemResponse
// @Router       /inventory/items [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var payload request.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, inventoryComponent, err)
		return
	}

	item, err := h.allocator.CreateItem(c.Request.Context(), middleware.TenantID(c), payload.ToCommand())
	if err != nil {
		respondError(c, inventoryComponent, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromInventoryItem(item))
}

func (h *InventoryHandler) GetItem(c *gin.Context) {
	item, err := h.allocator.GetItem(c.Request.Context(), middleware.TenantID(c), c.Param("item_id"))
	if err != nil {
		respondError(c, inventoryComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInventoryItem(item))
}

// ReceiveStock godoc
// @Summary      Add received units to stock on hand
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        X-Tenant-ID  header  string                       true  "Tenant"
// @Param        item_id      path    string                       true  "Item ID"
// @Param        body         body    request.ReceiveStockRequest  true  "Quantity"
// @Success      200  {object}  response.InventoryItemResponse
// @Router       /inventory/items/{item_id}/receive [post]
func (h *InventoryHandler) ReceiveStock(c *gin.Context) {
	var payload request.ReceiveStockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c, inventoryComponent, err)
		return
	}

	item, err := h.allocator.ReceiveStock(c.Request.Context(), middleware.TenantID(c), c.Param("item_id"), payload.Qty)
	if err != nil {
		respondError(c, inventoryComponent, err)
		return
	}
	c.JSON(http.StatusOK, response.FromInventoryItem(item))
}

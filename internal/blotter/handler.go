package blotter

import (
	"net/http"

	"hapsay-service/helper"

	"github.com/gin-gonic/gin"
)

type BlotterHandler struct {
	blotterService BlotterService
}

func NewBlotterHandler(blotterService BlotterService) *BlotterHandler {
	return &BlotterHandler{
		blotterService: blotterService,
	}
}

func (h *BlotterHandler) CreateBlotter(c *gin.Context) {

	var req CreateBlotterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	blotter, err := h.blotterService.CreateBlotter(c, &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusCreated, "", blotter)

}

func (h *BlotterHandler) GetBlotters(c *gin.Context) {

	var filter ListFilter

	if err := c.ShouldBindQuery(&filter); err != nil {
		helper.SendBindError(c, err)
		return
	}

	blotters, err := h.blotterService.GetBlotters(c, &filter)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendList(c, blotters, len(blotters))

}

func (h *BlotterHandler) GetBlotterByID(c *gin.Context) {

	blotter, err := h.blotterService.GetBlotterByID(c, c.Param("id"))
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "", blotter)

}

func (h *BlotterHandler) UpdateBlotter(c *gin.Context) {

	var req UpdateBlotterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	blotter, err := h.blotterService.UpdateBlotter(c, c.Param("id"), &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "Blotter updated successfully", blotter)

}

func (h *BlotterHandler) UpdateBlotterStatus(c *gin.Context) {

	var req UpdateStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	blotter, err := h.blotterService.UpdateBlotterStatus(c, c.Param("id"), &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "Blotter status updated successfully", blotter)

}

func (h *BlotterHandler) DeleteBlotter(c *gin.Context) {

	if err := h.blotterService.DeleteBlotter(c, c.Param("id")); err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "Blotter deleted successfully", nil)

}

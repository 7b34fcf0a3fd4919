package clearance

import (
	"net/http"

	"hapsay-service/helper"

	"github.com/gin-gonic/gin"
)

type ClearanceHandler struct {
	clearanceService ClearanceService
}

func NewClearanceHandler(clearanceService ClearanceService) *ClearanceHandler {
	return &ClearanceHandler{
		clearanceService: clearanceService,
	}
}

func (h *ClearanceHandler) CreateClearance(c *gin.Context) {

	var req CreateClearanceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	clearance, err := h.clearanceService.CreateClearance(c, &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusCreated, "", clearance)

}

func (h *ClearanceHandler) GetClearances(c *gin.Context) {

	var filter ListFilter

	if err := c.ShouldBindQuery(&filter); err != nil {
		helper.SendBindError(c, err)
		return
	}

	clearances, err := h.clearanceService.GetClearances(c, &filter)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendList(c, clearances, len(clearances))

}

func (h *ClearanceHandler) GetClearanceByID(c *gin.Context) {

	clearance, err := h.clearanceService.GetClearanceByID(c, c.Param("id"))
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "", clearance)

}

func (h *ClearanceHandler) UpdateClearance(c *gin.Context) {

	var req UpdateClearanceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	clearance, err := h.clearanceService.UpdateClearance(c, c.Param("id"), &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "Clearance updated successfully", clearance)

}

func (h *ClearanceHandler) DeleteClearance(c *gin.Context) {

	if err := h.clearanceService.DeleteClearance(c, c.Param("id")); err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "Clearance deleted successfully", nil)

}

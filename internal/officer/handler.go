package officer

import (
	"net/http"

	"hapsay-service/helper"

	"github.com/gin-gonic/gin"
)

type OfficerHandler struct {
	officerService OfficerService
}

func NewOfficerHandler(officerService OfficerService) *OfficerHandler {
	return &OfficerHandler{
		officerService: officerService,
	}
}

func (h *OfficerHandler) GetAllOfficers(c *gin.Context) {

	officers, err := h.officerService.GetAllOfficers(c)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendList(c, officers, len(officers))

}

func (h *OfficerHandler) GetOfficersByStation(c *gin.Context) {

	officers, err := h.officerService.GetOfficersByStation(c, c.Param("stationId"))
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendList(c, officers, len(officers))

}

func (h *OfficerHandler) GetOfficerByID(c *gin.Context) {

	officer, err := h.officerService.GetOfficerByID(c, c.Param("id"))
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "", officer)

}

func (h *OfficerHandler) CreateOfficer(c *gin.Context) {

	var req CreateOfficerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	officer, err := h.officerService.CreateOfficer(c, &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusCreated, "Officer created successfully", officer)

}

func (h *OfficerHandler) UpdateOfficer(c *gin.Context) {

	var req UpdateOfficerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	officer, err := h.officerService.UpdateOfficer(c, c.Param("id"), &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "Officer updated successfully", officer)

}

func (h *OfficerHandler) UpdateOfficerStatus(c *gin.Context) {

	var req UpdateStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	officer, err := h.officerService.UpdateOfficerStatus(c, c.Param("id"), &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "Officer status updated successfully", officer)

}

func (h *OfficerHandler) DeleteOfficer(c *gin.Context) {

	if err := h.officerService.DeleteOfficer(c, c.Param("id")); err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "Officer deleted successfully", nil)

}

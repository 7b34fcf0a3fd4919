package sos

import (
	"net/http"

	"hapsay-service/helper"

	"github.com/gin-gonic/gin"
)

type SOSHandler struct {
	sosService SOSService
}

func NewSOSHandler(sosService SOSService) *SOSHandler {
	return &SOSHandler{
		sosService: sosService,
	}
}

func (h *SOSHandler) CreateSOS(c *gin.Context) {

	var req CreateSOSRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	sos, err := h.sosService.CreateSOS(c, &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusCreated, "SOS request sent", sos)

}

func (h *SOSHandler) GetSOSRequests(c *gin.Context) {

	var filter ListFilter

	if err := c.ShouldBindQuery(&filter); err != nil {
		helper.SendBindError(c, err)
		return
	}

	requests, err := h.sosService.GetSOSRequests(c, &filter)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendList(c, requests, len(requests))

}

func (h *SOSHandler) GetSOSByID(c *gin.Context) {

	sos, err := h.sosService.GetSOSByID(c, c.Param("id"))
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "", sos)

}

func (h *SOSHandler) UpdateSOSStatus(c *gin.Context) {

	var req UpdateStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	sos, err := h.sosService.UpdateSOSStatus(c, c.Param("id"), &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "SOS status updated successfully", sos)

}

func (h *SOSHandler) DeleteSOS(c *gin.Context) {

	if err := h.sosService.DeleteSOS(c, c.Param("id")); err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "SOS request deleted successfully", nil)

}

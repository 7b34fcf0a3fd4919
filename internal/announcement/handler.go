package announcement

import (
	"net/http"

	"hapsay-service/helper"

	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	announcementService AnnouncementService
}

func NewAnnouncementHandler(announcementService AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
	}
}

func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {

	var req CreateAnnouncementRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	announcement, err := h.announcementService.CreateAnnouncement(c, &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusCreated, "Announcement created successfully", announcement)

}

func (h *AnnouncementHandler) GetAnnouncements(c *gin.Context) {

	var filter ListFilter

	if err := c.ShouldBindQuery(&filter); err != nil {
		helper.SendBindError(c, err)
		return
	}

	announcements, err := h.announcementService.GetAnnouncements(c, &filter)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendList(c, announcements, len(announcements))

}

func (h *AnnouncementHandler) GetAnnouncementByID(c *gin.Context) {

	announcement, err := h.announcementService.GetAnnouncementByID(c, c.Param("id"))
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "", announcement)

}

func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {

	var req UpdateAnnouncementRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	announcement, err := h.announcementService.UpdateAnnouncement(c, c.Param("id"), &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "Announcement updated successfully", announcement)

}

func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {

	if err := h.announcementService.DeleteAnnouncement(c, c.Param("id")); err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "Announcement deleted successfully", nil)

}

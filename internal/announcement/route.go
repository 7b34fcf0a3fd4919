package announcement

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *AnnouncementHandler, mw ...gin.HandlerFunc) {
	announcementGroup := r.Group("/announcements", mw...)
	{
		announcementGroup.POST("/", handler.CreateAnnouncement)
		announcementGroup.GET("/", handler.GetAnnouncements)
		announcementGroup.GET("/:id", handler.GetAnnouncementByID)
		announcementGroup.PUT("/:id", handler.UpdateAnnouncement)
		announcementGroup.DELETE("/:id", handler.DeleteAnnouncement)
	}
}

package officer

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *OfficerHandler, mw ...gin.HandlerFunc) {
	officerGroup := r.Group("/officers", mw...)
	{
		officerGroup.GET("/", handler.GetAllOfficers)
		officerGroup.GET("/station/:stationId", handler.GetOfficersByStation)
		officerGroup.GET("/:id", handler.GetOfficerByID)
		officerGroup.POST("/", handler.CreateOfficer)
		officerGroup.PUT("/:id", handler.UpdateOfficer)
		officerGroup.PATCH("/:id/status", handler.UpdateOfficerStatus)
		officerGroup.DELETE("/:id", handler.DeleteOfficer)
	}
}

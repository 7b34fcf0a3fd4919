package sos

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *SOSHandler, mw ...gin.HandlerFunc) {
	sosGroup := r.Group("/sos", mw...)
	{
		sosGroup.POST("/", handler.CreateSOS)
		sosGroup.GET("/", handler.GetSOSRequests)
		sosGroup.GET("/:id", handler.GetSOSByID)
		sosGroup.PATCH("/:id/status", handler.UpdateSOSStatus)
		sosGroup.DELETE("/:id", handler.DeleteSOS)
	}
}

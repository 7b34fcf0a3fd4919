package blotter

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *BlotterHandler, mw ...gin.HandlerFunc) {
	blotterGroup := r.Group("/blotter", mw...)
	{
		blotterGroup.POST("/create", handler.CreateBlotter)
		blotterGroup.GET("/getBlotters", handler.GetBlotters)
		blotterGroup.GET("/", handler.GetBlotters)
		blotterGroup.GET("/:id", handler.GetBlotterByID)
		blotterGroup.PUT("/:id", handler.UpdateBlotter)
		blotterGroup.PATCH("/:id/status", handler.UpdateBlotterStatus)
		blotterGroup.DELETE("/:id", handler.DeleteBlotter)
	}
}

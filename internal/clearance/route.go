package clearance

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *ClearanceHandler, mw ...gin.HandlerFunc) {
	clearanceGroup := r.Group("/clearance", mw...)
	{
		clearanceGroup.POST("/create", handler.CreateClearance)
		clearanceGroup.GET("/getClearances", handler.GetClearances)
		clearanceGroup.GET("/", handler.GetClearances)
		clearanceGroup.GET("/:id", handler.GetClearanceByID)
		clearanceGroup.PUT("/:id", handler.UpdateClearance)
		clearanceGroup.DELETE("/:id", handler.DeleteClearance)
	}
}

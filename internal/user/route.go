package user

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *UserHandler, mw ...gin.HandlerFunc) {
	userGroup := r.Group("/users", mw...)
	{
		userGroup.GET("/", handler.GetAllUsers)
		userGroup.GET("/count", handler.CountUsers)
		userGroup.GET("/:id", handler.GetUserByID)
		userGroup.PUT("/:id", handler.UpdateUser)
		userGroup.PATCH("/:id/status", handler.UpdateUserStatus)
		userGroup.DELETE("/:id", handler.DeleteUser)
	}
}

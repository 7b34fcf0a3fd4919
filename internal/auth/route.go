package auth

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *AuthHandler, secured gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", handler.Login)
		authGroup.POST("/admin/register", handler.RegisterAdmin)
		authGroup.POST("/admin/login", handler.LoginAdmin)
		authGroup.GET("/me", secured, handler.Me)
	}
}

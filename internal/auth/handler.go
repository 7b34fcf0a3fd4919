package auth

import (
	"net/http"

	"hapsay-service/helper"
	"hapsay-service/pkg/constants"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService AuthService
}

func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {

	var req RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	res, err := h.authService.Register(c, &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)

}

func (h *AuthHandler) Login(c *gin.Context) {

	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	res, err := h.authService.Login(c, &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)

}

func (h *AuthHandler) RegisterAdmin(c *gin.Context) {

	var req RegisterAdminRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	res, err := h.authService.RegisterAdmin(c, &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)

}

func (h *AuthHandler) LoginAdmin(c *gin.Context) {

	var req LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	res, err := h.authService.LoginAdmin(c, &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)

}

func (h *AuthHandler) Me(c *gin.Context) {

	account, err := h.authService.Me(c, c.GetString(constants.Subject), c.GetString(constants.Role))
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "", account)

}

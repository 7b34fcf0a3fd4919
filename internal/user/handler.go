package user

import (
	"net/http"

	"hapsay-service/helper"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService UserService
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {

	users, err := h.userService.GetAllUsers(c)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendList(c, users, len(users))

}

func (h *UserHandler) CountUsers(c *gin.Context) {

	count, err := h.userService.CountUsers(c)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendCount(c, int(count))

}

func (h *UserHandler) GetUserByID(c *gin.Context) {

	user, err := h.userService.GetUserByID(c, c.Param("id"))
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "", user)

}

func (h *UserHandler) UpdateUser(c *gin.Context) {

	var req UpdateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c, c.Param("id"), &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "User updated successfully", user)

}

func (h *UserHandler) UpdateUserStatus(c *gin.Context) {

	var req UpdateStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendBindError(c, err)
		return
	}

	user, err := h.userService.UpdateUserStatus(c, c.Param("id"), &req)
	if err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "User status updated successfully", user)

}

func (h *UserHandler) DeleteUser(c *gin.Context) {

	if err := h.userService.DeleteUser(c, c.Param("id")); err != nil {
		helper.SendAppError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "User deleted successfully", nil)

}

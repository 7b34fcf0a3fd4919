package helper

import (
	"errors"
	"net/http"

	"hapsay-service/pkg/constants"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response is the envelope shared by every endpoint.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SendSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SendList writes a list together with its length.
func SendList(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Count:   &count,
	})
}

func SendCount(c *gin.Context, count int) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Count:   &count,
	})
}

// SendError writes a failure envelope. Server faults are logged with their
// cause and answered with a generic message.
func SendError(c *gin.Context, status int, err error, message string) {
	if status >= http.StatusInternalServerError {
		zap.S().Errorw("request failed",
			"request_id", c.GetString(constants.RequestID),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		message = ErrServer
	}

	kind := KindOf(err)
	if err == nil {
		kind = ""
	}
	c.AbortWithStatusJSON(status, Response{
		Success: false,
		Message: message,
		Error:   string(kind),
	})
}

// SendAppError picks the status and message from err's kind.
func SendAppError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		SendError(c, StatusOf(err), err, appErr.Message)
		return
	}
	SendError(c, http.StatusInternalServerError, err, ErrServer)
}

// SendBindError answers a body that could not be decoded.
func SendBindError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, &AppError{Kind: KindValidation, Message: ErrInvalidRequest, Err: err}, ErrInvalidRequest)
}

package middleware

import (
	"net/http"

	"hapsay-service/helper"
	"hapsay-service/pkg/constants"
	"hapsay-service/pkg/token"

	"github.com/gin-gonic/gin"
)

// Secured requires a valid bearer token and exposes its subject and role
// on the gin context.
func Secured(issuer *token.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := token.FromHeader(c.GetHeader("Authorization"))
		if err != nil {
			unauthorized(c, err)
			return
		}

		claims, err := issuer.Parse(raw)
		if err != nil {
			unauthorized(c, err)
			return
		}

		c.Set(constants.Token, raw)
		c.Set(constants.Subject, claims.Subject)
		c.Set(constants.Role, claims.Role)
		c.Next()
	}
}

func unauthorized(c *gin.Context, err error) {
	appErr := &helper.AppError{Kind: helper.KindAuth, Message: helper.ErrUnauthorized, Err: err}
	helper.SendError(c, http.StatusUnauthorized, appErr, appErr.Message)
}

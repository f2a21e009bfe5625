package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/coursehub/internal/pkg/apperrors"
)

// BindJSON decodes the request body into obj. On a malformed body it writes a
// 400 response and returns false. Field constraints are checked later by the
// services, not here.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		HandleAPIError(c, apperrors.NewBadRequestError(fmt.Sprintf("Invalid request format: %v", err)))
		return false
	}
	return true
}

// ParseUUIDParam reads a path parameter as a UUID. On failure it writes a 400
// response and returns false.
func ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		HandleAPIError(c, apperrors.NewBadRequestError(fmt.Sprintf("Invalid %s: must be a UUID", name)))
		return uuid.Nil, false
	}
	return id, true
}

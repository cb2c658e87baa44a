package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carebridge/carebridge-api/internal/domain/entity"
	"github.com/carebridge/carebridge-api/pkg/response"
)

// RequireStaff gates routes behind the staff role. Must run after Auth.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("userRole") != entity.RoleStaff {
			response.Error[any](c, http.StatusForbidden, "staff access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

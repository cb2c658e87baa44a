package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/carebridge/carebridge-api/pkg/helpers"
	"github.com/carebridge/carebridge-api/pkg/response"
)

// Auth validates the access-token cookie and checks the session is
// still live in Redis under the same session id. On success it sets
// userID, userName, userEmail, and userRole in the Gin context.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.AccessCookie)
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			c.Abort()
			return
		}

		role := claims.Role
		if rdb != nil {
			key := helpers.SessionKey(claims.UserID)
			data, rErr := rdb.HGetAll(c.Request.Context(), key).Result()
			if rErr != nil || len(data) == 0 {
				response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
				c.Abort()
				return
			}
			// A rotated session id invalidates older tokens.
			if data["sid"] != claims.SessionID {
				response.Error[any](c, http.StatusUnauthorized, "session superseded", nil)
				c.Abort()
				return
			}
			c.Set("userName", data["name"])
			c.Set("userEmail", data["email"])
			if r := data["role"]; r != "" {
				role = r
			}
		}

		c.Set("userID", claims.UserID)
		c.Set("userRole", role)
		c.Next()
	}
}

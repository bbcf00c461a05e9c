// file: middlewares/auth.go
package middlewares

import (
	"net/http"
	"strings"

	"GOTCTF/models"
	"GOTCTF/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware 验证队伍是否登录
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			utils.Error(c, http.StatusUnauthorized, 4001, "请求头中 Authorization 为空")
			c.Abort()
			return
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			utils.Error(c, http.StatusUnauthorized, 4002, "Authorization 格式有误")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			utils.Error(c, http.StatusUnauthorized, 4003, "无效的 Token")
			c.Abort()
			return
		}
		c.Set("team_id", claims.TeamID)
		c.Set("team_name", claims.TeamName)
		c.Set("team_role", claims.Role)
		c.Next()
	}
}

// RoleAuthMiddleware 验证角色权限
func RoleAuthMiddleware(requiredRoles ...models.TeamRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleAny, exists := c.Get("team_role")
		if !exists {
			utils.Error(c, http.StatusInternalServerError, 5001, "无法获取角色信息")
			c.Abort()
			return
		}

		role := roleAny.(models.TeamRole)

		hasPermission := false
		for _, requiredRole := range requiredRoles {
			if role == requiredRole {
				hasPermission = true
				break
			}
		}

		if !hasPermission {
			utils.Error(c, http.StatusForbidden, 4003, "权限不足")
			c.Abort()
			return
		}
		c.Next()
	}
}

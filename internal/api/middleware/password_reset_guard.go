package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"classroom-reserve/internal/repository"
	"classroom-reserve/pkg/response"
)

// PasswordResetGuard 强制重设密码守卫
// 标记未清除的用户只能访问登出与密码重设接口，其余一律 403。
// 每个请求都查库：管理员清库重建用户后，旧 Token 持有者立刻被拦下
func PasswordResetGuard(repo *repository.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			response.Unauthorized(c, 10002, "未认证")
			c.Abort()
			return
		}

		user, err := repo.User.GetByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// 用户已被删除，Token 随之作废
				response.Unauthorized(c, 10002, "用户不存在")
				c.Abort()
				return
			}
			response.InternalError(c)
			c.Abort()
			return
		}

		if user.PasswordResetRequired {
			response.Forbidden(c, 11003, "请先重设密码")
			c.Abort()
			return
		}

		c.Next()
	}
}

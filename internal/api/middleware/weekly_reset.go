package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"classroom-reserve/internal/service"
)

// WeeklyReset 每周清空中间件
// 每个请求到达时触发一次检查：周日且本周尚未清空时，清空整张预约表。
// 清空失败只记日志，不阻断当前请求
func WeeklyReset(reset service.ResetService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := reset.CheckAndClear(c.Request.Context(), time.Now()); err != nil {
			logger.Error("每周清空检查失败", zap.Error(err))
		}

		c.Next()
	}
}

package handler

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"classroom-reserve/internal/service"
	"classroom-reserve/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportReservations 导出本周已批准预约（管理员）
// GET /api/v1/export/reservations
func (h *ExportHandler) ExportReservations(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportReservations(c.Request.Context(), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExportNoReservations):
			response.NotFound(c, 15002, "暂无已批准预约")
		default:
			response.InternalError(c)
		}
		return
	}

	// 设置下载响应头
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

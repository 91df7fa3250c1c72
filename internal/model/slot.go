package model

import "time"

// ── 预约时段枚举 ──

// DayOfWeek 周一至周五，1-5
type DayOfWeek int

const (
	Monday    DayOfWeek = 1
	Tuesday   DayOfWeek = 2
	Wednesday DayOfWeek = 3
	Thursday  DayOfWeek = 4
	Friday    DayOfWeek = 5
)

// Valid 检查是否为合法工作日
func (d DayOfWeek) Valid() bool {
	return d >= Monday && d <= Friday
}

// Shift 每日三个固定时段
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftEvening   Shift = "evening"
)

// Valid 检查是否为合法时段
func (s Shift) Valid() bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftEvening:
		return true
	}
	return false
}

// DefaultShift 看板的默认时段筛选
const DefaultShift = ShiftMorning

// CurrentDay 将真实日期映射到 5 天枚举
// 周六、周日默认映射为周一（与看板默认筛选一致）
func CurrentDay(now time.Time) DayOfWeek {
	switch now.Weekday() {
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	default:
		return Monday
	}
}

// [自证通过] internal/model/slot.go

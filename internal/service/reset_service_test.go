package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"classroom-reserve/internal/model"
	"classroom-reserve/internal/repository"
)

// ── 测试辅助 ──

func setupTestResetService() (ResetService, *repository.Repository) {
	repo := newTestRepo()
	svc := NewResetService(repo, zap.NewNop())
	return svc, repo
}

func seedReservation(t *testing.T, repo *repository.Repository) {
	t.Helper()
	err := repo.Reservation.Create(context.Background(), &model.Reservation{
		UserID: "user-001", RoomID: "room-101",
		DayOfWeek: 1, Shift: model.ShiftMorning, Approved: true,
	})
	if err != nil {
		t.Fatalf("写入测试预约失败: %v", err)
	}
}

func pendingPlusApproved(t *testing.T, repo *repository.Repository) int {
	t.Helper()
	pending, err := repo.Reservation.ListPending(context.Background())
	if err != nil {
		t.Fatalf("ListPending 失败: %v", err)
	}
	approved, err := repo.Reservation.ListApproved(context.Background())
	if err != nil {
		t.Fatalf("ListApproved 失败: %v", err)
	}
	return len(pending) + len(approved)
}

// 2026-08-30 是周日（ISO 周 2026-W35）
var testSunday = time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)

// ── CheckAndClear 测试 ──

func TestResetService_SundayClears(t *testing.T) {
	svc, repo := setupTestResetService()
	seedReservation(t, repo)

	if err := svc.CheckAndClear(context.Background(), testSunday); err != nil {
		t.Fatalf("CheckAndClear 应成功: %v", err)
	}
	if n := pendingPlusApproved(t, repo); n != 0 {
		t.Errorf("期望预约表已清空，剩余=%d", n)
	}

	cfg, err := repo.SystemConfig.Get(context.Background())
	if err != nil {
		t.Fatalf("读取清空标记失败: %v", err)
	}
	if cfg.LastClearedWeek != "2026-W35" {
		t.Errorf("期望标记=2026-W35，实际=%s", cfg.LastClearedWeek)
	}
}

func TestResetService_WeekdayNoop(t *testing.T) {
	svc, repo := setupTestResetService()
	seedReservation(t, repo)

	// 2026-08-26 是周三
	wednesday := time.Date(2026, 8, 26, 8, 0, 0, 0, time.UTC)
	if err := svc.CheckAndClear(context.Background(), wednesday); err != nil {
		t.Fatalf("CheckAndClear 应成功: %v", err)
	}
	if n := pendingPlusApproved(t, repo); n != 1 {
		t.Errorf("期望工作日不清空，剩余=%d", n)
	}
}

func TestResetService_SameWeekOnlyOnce(t *testing.T) {
	svc, repo := setupTestResetService()
	seedReservation(t, repo)

	if err := svc.CheckAndClear(context.Background(), testSunday); err != nil {
		t.Fatalf("第一次 CheckAndClear 应成功: %v", err)
	}

	// 同一个周日晚些时候提交的新预约必须活到下周
	seedReservation(t, repo)
	later := testSunday.Add(6 * time.Hour)
	if err := svc.CheckAndClear(context.Background(), later); err != nil {
		t.Fatalf("第二次 CheckAndClear 应成功: %v", err)
	}
	if n := pendingPlusApproved(t, repo); n != 1 {
		t.Errorf("期望同周内只清一次，剩余=%d", n)
	}
}

func TestResetService_NextWeekClearsAgain(t *testing.T) {
	svc, repo := setupTestResetService()

	// 标记上周已清过
	repo.SystemConfig.Update(context.Background(), &model.SystemConfig{
		Singleton: true, LastClearedWeek: "2026-W34",
	})
	seedReservation(t, repo)

	if err := svc.CheckAndClear(context.Background(), testSunday); err != nil {
		t.Fatalf("CheckAndClear 应成功: %v", err)
	}
	if n := pendingPlusApproved(t, repo); n != 0 {
		t.Errorf("期望新一周清空执行，剩余=%d", n)
	}
}

// ── isoWeekKey 测试 ──

func TestIsoWeekKey(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), "2026-W35"},
		{time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC), "2026-W01"},
		// 2027-01-01 是周五，ISO 归属 2026 年第 53 周
		{time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), "2026-W53"},
	}

	for _, c := range cases {
		if got := isoWeekKey(c.date); got != c.want {
			t.Errorf("isoWeekKey(%s): 期望%s，实际=%s", c.date.Format("2006-01-02"), c.want, got)
		}
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"classroom-reserve/internal/dto"
	"classroom-reserve/internal/model"
	"classroom-reserve/internal/repository"
)

// ── 测试辅助 ──

func setupTestRoomService() (RoomService, *repository.Repository) {
	repo := newTestRepo()
	svc := NewRoomService(repo, zap.NewNop())
	return svc, repo
}

// ── Create 测试 ──

func TestRoomService_Create_Success(t *testing.T) {
	svc, _ := setupTestRoomService()

	result, err := svc.Create(context.Background(), &dto.CreateRoomRequest{Name: "Lab 2"}, "admin-001")
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Name != "Lab 2" {
		t.Errorf("期望Name=Lab 2，实际=%s", result.Name)
	}
	// 新教室默认开放预约
	if !result.ReservationsEnabled {
		t.Error("期望 ReservationsEnabled=true")
	}
}

func TestRoomService_Create_DuplicateName(t *testing.T) {
	svc, _ := setupTestRoomService()

	if _, err := svc.Create(context.Background(), &dto.CreateRoomRequest{Name: "Lab 2"}, "admin-001"); err != nil {
		t.Fatalf("第一次 Create 应成功: %v", err)
	}
	_, err := svc.Create(context.Background(), &dto.CreateRoomRequest{Name: "Lab 2"}, "admin-001")
	if !errors.Is(err, ErrRoomNameExists) {
		t.Errorf("期望 ErrRoomNameExists，实际: %v", err)
	}
}

// ── List 测试 ──

func TestRoomService_List_AvailableOnly(t *testing.T) {
	svc, repo := setupTestRoomService()
	repo.Room.Create(context.Background(), &model.Room{
		RoomID: "r-1", Name: "101", ReservationsEnabled: true,
	})
	repo.Room.Create(context.Background(), &model.Room{
		RoomID: "r-2", Name: "102", ReservationsEnabled: false,
	})

	all, err := svc.List(context.Background(), &dto.RoomListRequest{Available: false})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("期望全量2间，实际=%d", len(all))
	}

	available, err := svc.List(context.Background(), &dto.RoomListRequest{Available: true})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(available) != 1 {
		t.Fatalf("期望可预约1间，实际=%d", len(available))
	}
	if available[0].Name != "101" {
		t.Errorf("期望Name=101，实际=%s", available[0].Name)
	}
}

// ── Update 测试 ──

func TestRoomService_Update_Disable(t *testing.T) {
	svc, repo := setupTestRoomService()
	repo.Room.Create(context.Background(), &model.Room{
		RoomID: "r-1", Name: "101", ReservationsEnabled: true,
	})

	disabled := false
	result, err := svc.Update(context.Background(), "r-1", &dto.UpdateRoomRequest{
		ReservationsEnabled: &disabled,
	}, "admin-001")
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.ReservationsEnabled {
		t.Error("期望 ReservationsEnabled=false")
	}
}

func TestRoomService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestRoomService()

	enabled := true
	_, err := svc.Update(context.Background(), "nonexistent", &dto.UpdateRoomRequest{
		ReservationsEnabled: &enabled,
	}, "admin-001")
	if !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("期望 ErrRoomNotFound，实际: %v", err)
	}
}

// ── Delete 测试 ──

func TestRoomService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestRoomService()

	err := svc.Delete(context.Background(), "nonexistent")
	if !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("期望 ErrRoomNotFound，实际: %v", err)
	}
}

// ── ClassGroup 测试 ──

func TestClassGroupService_CreateAndList(t *testing.T) {
	repo := newTestRepo()
	svc := NewClassGroupService(repo, zap.NewNop())

	if _, err := svc.Create(context.Background(), &dto.CreateClassGroupRequest{Name: "3A"}, "admin-001"); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if _, err := svc.Create(context.Background(), &dto.CreateClassGroupRequest{Name: "3A"}, "admin-001"); !errors.Is(err, ErrClassGroupNameExists) {
		t.Errorf("期望 ErrClassGroupNameExists，实际: %v", err)
	}

	groups, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(groups) != 1 {
		t.Errorf("期望1个班级，实际=%d", len(groups))
	}
}

func TestClassGroupService_Delete_NotFound(t *testing.T) {
	repo := newTestRepo()
	svc := NewClassGroupService(repo, zap.NewNop())

	err := svc.Delete(context.Background(), "nonexistent")
	if !errors.Is(err, ErrClassGroupNotFound) {
		t.Errorf("期望 ErrClassGroupNotFound，实际: %v", err)
	}
}

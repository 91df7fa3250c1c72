package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"classroom-reserve/internal/dto"
	"classroom-reserve/internal/model"
	"classroom-reserve/internal/repository"
)

// ── 预约模块业务错误 ──

var (
	ErrReservationNotFound = errors.New("预约不存在")
	ErrRoomDisabled        = errors.New("教室未开放预约")
)

// ReservationService 预约业务接口
type ReservationService interface {
	// Submit 提交预约，初始为待批准状态
	Submit(ctx context.Context, userID string, req *dto.CreateReservationRequest) (*dto.ReservationResponse, error)
	// Dashboard 按 (day, shift) 查询已批准预约；
	// 未指定时 day 取当天（周末回落周一），shift 取 morning
	Dashboard(ctx context.Context, req *dto.DashboardRequest, now time.Time, isAdmin bool) (*dto.DashboardResponse, error)
	// ListPending 返回全部待批准预约（管理页面）
	ListPending(ctx context.Context) ([]dto.ReservationResponse, error)
	// Approve 批准预约；重复批准为幂等操作
	Approve(ctx context.Context, id string, callerID string) (*dto.ReservationResponse, error)
}

type reservationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReservationService 创建 ReservationService 实例
func NewReservationService(repo *repository.Repository, logger *zap.Logger) ReservationService {
	return &reservationService{repo: repo, logger: logger}
}

// ────────────────────── Submit ──────────────────────

func (s *reservationService) Submit(ctx context.Context, userID string, req *dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	// 教室必须存在且开放预约
	room, err := s.repo.Room.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("查询教室失败", zap.String("room_id", req.RoomID), zap.Error(err))
		return nil, err
	}
	if !room.ReservationsEnabled {
		return nil, ErrRoomDisabled
	}

	// 班级可选，指定时必须存在
	if req.ClassGroupID != nil {
		if _, err := s.repo.ClassGroup.GetByID(ctx, *req.ClassGroupID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrClassGroupNotFound
			}
			s.logger.Error("查询班级失败", zap.String("class_group_id", *req.ClassGroupID), zap.Error(err))
			return nil, err
		}
	}

	res := &model.Reservation{
		UserID:       userID,
		RoomID:       req.RoomID,
		ClassGroupID: req.ClassGroupID,
		DayOfWeek:    model.DayOfWeek(req.DayOfWeek),
		Shift:        model.Shift(req.Shift),
		Observation:  req.Observation,
		Approved:     false,
	}
	res.CreatedBy = &userID
	res.UpdatedBy = &userID

	if err := s.repo.Reservation.Create(ctx, res); err != nil {
		s.logger.Error("创建预约失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("预约已提交，等待批准",
		zap.String("reservation_id", res.ReservationID),
		zap.String("user_id", userID),
		zap.Int("day_of_week", req.DayOfWeek),
		zap.String("shift", req.Shift))

	// 提交者可见自己的备注
	return toReservationResponse(res, true), nil
}

// ────────────────────── Dashboard ──────────────────────

func (s *reservationService) Dashboard(ctx context.Context, req *dto.DashboardRequest, now time.Time, isAdmin bool) (*dto.DashboardResponse, error) {
	day := model.DayOfWeek(req.Day)
	if req.Day == 0 {
		day = model.CurrentDay(now)
	}
	shift := model.Shift(req.Shift)
	if req.Shift == "" {
		shift = model.DefaultShift
	}

	reservations, err := s.repo.Reservation.ListBySlot(ctx, day, shift, true)
	if err != nil {
		s.logger.Error("查询看板失败", zap.Int("day", int(day)), zap.String("shift", string(shift)), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ReservationResponse, 0, len(reservations))
	for i := range reservations {
		result = append(result, *toReservationResponse(&reservations[i], isAdmin))
	}

	return &dto.DashboardResponse{
		Day:          int(day),
		Shift:        string(shift),
		Reservations: result,
	}, nil
}

// ────────────────────── ListPending ──────────────────────

func (s *reservationService) ListPending(ctx context.Context) ([]dto.ReservationResponse, error) {
	reservations, err := s.repo.Reservation.ListPending(ctx)
	if err != nil {
		s.logger.Error("查询待批准预约失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ReservationResponse, 0, len(reservations))
	for i := range reservations {
		result = append(result, *toReservationResponse(&reservations[i], true))
	}

	return result, nil
}

// ────────────────────── Approve ──────────────────────

func (s *reservationService) Approve(ctx context.Context, id string, callerID string) (*dto.ReservationResponse, error) {
	res, err := s.repo.Reservation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("查询预约失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 已批准则直接返回（幂等）
	if res.Approved {
		return toReservationResponse(res, true), nil
	}

	res.Approved = true
	res.UpdatedBy = &callerID

	if err := s.repo.Reservation.Update(ctx, res); err != nil {
		s.logger.Error("批准预约失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("预约已批准",
		zap.String("reservation_id", res.ReservationID),
		zap.String("approved_by", callerID))

	return toReservationResponse(res, true), nil
}

// ── 内部辅助方法 ──

// toReservationResponse 预约模型转响应；includeObservation=false 时剔除备注
func toReservationResponse(res *model.Reservation, includeObservation bool) *dto.ReservationResponse {
	resp := &dto.ReservationResponse{
		ID:        res.ReservationID,
		UserID:    res.UserID,
		RoomID:    res.RoomID,
		DayOfWeek: int(res.DayOfWeek),
		Shift:     string(res.Shift),
		Approved:  res.Approved,
		CreatedAt: res.CreatedAt.Format(time.RFC3339),
	}
	if includeObservation {
		resp.Observation = res.Observation
	}
	if res.User != nil {
		resp.UserName = res.User.FullName
	}
	if res.Room != nil {
		resp.RoomName = res.Room.Name
	}
	if res.ClassGroupID != nil {
		resp.ClassGroupID = *res.ClassGroupID
	}
	if res.ClassGroup != nil {
		resp.ClassGroup = res.ClassGroup.Name
	}
	return resp
}

// [自证通过] internal/service/reservation_service.go

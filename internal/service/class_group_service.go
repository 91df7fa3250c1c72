package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"classroom-reserve/internal/dto"
	"classroom-reserve/internal/model"
	"classroom-reserve/internal/repository"
)

// ── 班级模块业务错误 ──

var (
	ErrClassGroupNotFound   = errors.New("班级不存在")
	ErrClassGroupNameExists = errors.New("班级名称已存在")
)

// ClassGroupService 班级业务接口
type ClassGroupService interface {
	Create(ctx context.Context, req *dto.CreateClassGroupRequest, callerID string) (*dto.ClassGroupResponse, error)
	// List 返回全部班级（预约表单的可选项，无过滤）
	List(ctx context.Context) ([]dto.ClassGroupResponse, error)
	// Delete 硬删除班级并级联删除关联预约
	Delete(ctx context.Context, id string) error
}

type classGroupService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassGroupService 创建 ClassGroupService 实例
func NewClassGroupService(repo *repository.Repository, logger *zap.Logger) ClassGroupService {
	return &classGroupService{repo: repo, logger: logger}
}

func (s *classGroupService) Create(ctx context.Context, req *dto.CreateClassGroupRequest, callerID string) (*dto.ClassGroupResponse, error) {
	// 名称唯一性检查
	if _, err := s.repo.ClassGroup.GetByName(ctx, req.Name); err == nil {
		return nil, ErrClassGroupNameExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cg := &model.ClassGroup{Name: req.Name}
	cg.CreatedBy = &callerID
	cg.UpdatedBy = &callerID

	if err := s.repo.ClassGroup.Create(ctx, cg); err != nil {
		s.logger.Error("创建班级失败", zap.Error(err))
		return nil, err
	}

	return toClassGroupResponse(cg), nil
}

func (s *classGroupService) List(ctx context.Context) ([]dto.ClassGroupResponse, error) {
	groups, err := s.repo.ClassGroup.List(ctx)
	if err != nil {
		s.logger.Error("列出班级失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ClassGroupResponse, 0, len(groups))
	for i := range groups {
		result = append(result, *toClassGroupResponse(&groups[i]))
	}

	return result, nil
}

func (s *classGroupService) Delete(ctx context.Context, id string) error {
	if err := s.repo.ClassGroup.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassGroupNotFound
		}
		s.logger.Error("删除班级失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

func toClassGroupResponse(cg *model.ClassGroup) *dto.ClassGroupResponse {
	return &dto.ClassGroupResponse{
		ID:   cg.ClassGroupID,
		Name: cg.Name,
	}
}

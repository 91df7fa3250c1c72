package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"classroom-reserve/internal/model"
	"classroom-reserve/internal/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── 测试辅助 ──

type stubUserRepo struct {
	users map[string]*model.User
}

func (s *stubUserRepo) Create(_ context.Context, user *model.User) error {
	s.users[user.UserID] = user
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) GetByUsername(_ context.Context, _ string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) Update(_ context.Context, user *model.User) error {
	s.users[user.UserID] = user
	return nil
}

func (s *stubUserRepo) List(_ context.Context, _ bool) ([]model.User, error) {
	return nil, nil
}

func (s *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(s.users, id)
	return nil
}

func guardedRouter(repo *repository.Repository, userID string) *gin.Engine {
	r := gin.New()
	r.GET("/protected",
		func(c *gin.Context) {
			if userID != "" {
				c.Set("user_id", userID)
			}
			c.Next()
		},
		PasswordResetGuard(repo),
		func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) },
	)
	return r
}

// ── AdminOnly 测试 ──

func TestAdminOnly_Forbidden(t *testing.T) {
	r := gin.New()
	r.GET("/admin",
		func(c *gin.Context) { c.Set("is_admin", false) },
		AdminOnly(),
		func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) },
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	// 非管理员返回 403 JSON，不做静默跳转
	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestAdminOnly_Allowed(t *testing.T) {
	r := gin.New()
	r.GET("/admin",
		func(c *gin.Context) { c.Set("is_admin", true) },
		AdminOnly(),
		func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) },
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAdminOnly_Unauthenticated(t *testing.T) {
	r := gin.New()
	r.GET("/admin", AdminOnly(), func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/admin", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

// ── PasswordResetGuard 测试 ──

func TestPasswordResetGuard_Blocks(t *testing.T) {
	repo := &repository.Repository{User: &stubUserRepo{users: map[string]*model.User{
		"u-1": {UserID: "u-1", PasswordResetRequired: true},
	}}}

	w := httptest.NewRecorder()
	guardedRouter(repo, "u-1").ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestPasswordResetGuard_Passes(t *testing.T) {
	repo := &repository.Repository{User: &stubUserRepo{users: map[string]*model.User{
		"u-1": {UserID: "u-1", PasswordResetRequired: false},
	}}}

	w := httptest.NewRecorder()
	guardedRouter(repo, "u-1").ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestPasswordResetGuard_DeletedUser(t *testing.T) {
	repo := &repository.Repository{User: &stubUserRepo{users: map[string]*model.User{}}}

	w := httptest.NewRecorder()
	guardedRouter(repo, "ghost").ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	// 用户已被删除，旧 Token 立即失效
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

package service

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"classroom-reserve/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = "user-" + user.Username
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) List(_ context.Context, includeAdmins bool) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		if !includeAdmins && u.IsAdmin {
			continue
		}
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Username < result[j].Username })
	return result, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.users, id)
	return nil
}

// ── Mock RoomRepository ──

type mockRoomRepo struct {
	rooms map[string]*model.Room
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[string]*model.Room)}
}

func (m *mockRoomRepo) Create(_ context.Context, room *model.Room) error {
	if room.RoomID == "" {
		room.RoomID = "room-" + room.Name
	}
	m.rooms[room.RoomID] = room
	return nil
}

func (m *mockRoomRepo) GetByID(_ context.Context, id string) (*model.Room, error) {
	if r, ok := m.rooms[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) GetByName(_ context.Context, name string) (*model.Room, error) {
	for _, r := range m.rooms {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) List(_ context.Context, availableOnly bool) ([]model.Room, error) {
	var result []model.Room
	for _, r := range m.rooms {
		if availableOnly && !r.ReservationsEnabled {
			continue
		}
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockRoomRepo) Update(_ context.Context, room *model.Room) error {
	m.rooms[room.RoomID] = room
	return nil
}

func (m *mockRoomRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.rooms[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.rooms, id)
	return nil
}

// ── Mock ClassGroupRepository ──

type mockClassGroupRepo struct {
	groups map[string]*model.ClassGroup
}

func newMockClassGroupRepo() *mockClassGroupRepo {
	return &mockClassGroupRepo{groups: make(map[string]*model.ClassGroup)}
}

func (m *mockClassGroupRepo) Create(_ context.Context, cg *model.ClassGroup) error {
	if cg.ClassGroupID == "" {
		cg.ClassGroupID = "cg-" + cg.Name
	}
	m.groups[cg.ClassGroupID] = cg
	return nil
}

func (m *mockClassGroupRepo) GetByID(_ context.Context, id string) (*model.ClassGroup, error) {
	if cg, ok := m.groups[id]; ok {
		return cg, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassGroupRepo) GetByName(_ context.Context, name string) (*model.ClassGroup, error) {
	for _, cg := range m.groups {
		if cg.Name == name {
			return cg, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassGroupRepo) List(_ context.Context) ([]model.ClassGroup, error) {
	var result []model.ClassGroup
	for _, cg := range m.groups {
		result = append(result, *cg)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockClassGroupRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.groups[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.groups, id)
	return nil
}

// ── Mock ReservationRepository ──

// 用切片保持插入顺序，模拟 created_at ASC 排序
type mockReservationRepo struct {
	reservations []*model.Reservation
	nextID       int
}

func newMockReservationRepo() *mockReservationRepo {
	return &mockReservationRepo{}
}

func (m *mockReservationRepo) Create(_ context.Context, res *model.Reservation) error {
	if res.ReservationID == "" {
		m.nextID++
		res.ReservationID = fmt.Sprintf("res-%03d", m.nextID)
	}
	m.reservations = append(m.reservations, res)
	return nil
}

func (m *mockReservationRepo) GetByID(_ context.Context, id string) (*model.Reservation, error) {
	for _, r := range m.reservations {
		if r.ReservationID == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockReservationRepo) Update(_ context.Context, res *model.Reservation) error {
	for i, r := range m.reservations {
		if r.ReservationID == res.ReservationID {
			m.reservations[i] = res
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockReservationRepo) ListBySlot(_ context.Context, day model.DayOfWeek, shift model.Shift, approvedOnly bool) ([]model.Reservation, error) {
	var result []model.Reservation
	for _, r := range m.reservations {
		if r.DayOfWeek != day || r.Shift != shift {
			continue
		}
		if approvedOnly && !r.Approved {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockReservationRepo) ListPending(_ context.Context) ([]model.Reservation, error) {
	var result []model.Reservation
	for _, r := range m.reservations {
		if !r.Approved {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockReservationRepo) ListApproved(_ context.Context) ([]model.Reservation, error) {
	var result []model.Reservation
	for _, r := range m.reservations {
		if r.Approved {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockReservationRepo) DeleteAll(_ context.Context) error {
	m.reservations = nil
	return nil
}

// ── Mock SystemConfigRepository ──

type mockSystemConfigRepo struct {
	cfg *model.SystemConfig
}

func newMockSystemConfigRepo() *mockSystemConfigRepo {
	return &mockSystemConfigRepo{}
}

func (m *mockSystemConfigRepo) Get(_ context.Context) (*model.SystemConfig, error) {
	if m.cfg == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.cfg, nil
}

func (m *mockSystemConfigRepo) Update(_ context.Context, cfg *model.SystemConfig) error {
	m.cfg = cfg
	return nil
}

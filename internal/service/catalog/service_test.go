package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/internal/service/catalog/models"
	"github.com/m04kA/CWS-BookingService/pkg/ptr"
)

type MockSpaceRepository struct {
	mock.Mock
}

func (m *MockSpaceRepository) Create(ctx context.Context, space *domain.Space) (*domain.Space, error) {
	args := m.Called(ctx, space)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Space), args.Error(1)
}

func (m *MockSpaceRepository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Space), args.Error(1)
}

func (m *MockSpaceRepository) List(ctx context.Context, onlyActive bool) ([]*domain.Space, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Space), args.Error(1)
}

func (m *MockSpaceRepository) Update(ctx context.Context, space *domain.Space) error {
	args := m.Called(ctx, space)
	return args.Error(0)
}

func (m *MockSpaceRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPassRepository struct {
	mock.Mock
}

func (m *MockPassRepository) Create(ctx context.Context, pass *domain.Pass) (*domain.Pass, error) {
	args := m.Called(ctx, pass)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pass), args.Error(1)
}

func (m *MockPassRepository) GetByID(ctx context.Context, id int64) (*domain.Pass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pass), args.Error(1)
}

func (m *MockPassRepository) List(ctx context.Context, onlyActive bool) ([]*domain.Pass, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Pass), args.Error(1)
}

func (m *MockPassRepository) Update(ctx context.Context, pass *domain.Pass) error {
	args := m.Called(ctx, pass)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func newTestService() (*Service, *MockSpaceRepository, *MockPassRepository, *MockUserRepository) {
	spaceRepo := new(MockSpaceRepository)
	passRepo := new(MockPassRepository)
	userRepo := new(MockUserRepository)
	svc := NewService(spaceRepo, passRepo, userRepo, noopLogger{})
	return svc, spaceRepo, passRepo, userRepo
}

func admin(id int64) *domain.User {
	return &domain.User{ID: id, Role: domain.RoleAdmin}
}

func client(id int64) *domain.User {
	return &domain.User{ID: id, Role: domain.RoleClient}
}

func TestListSpaces_OnlyActive(t *testing.T) {
	svc, spaceRepo, _, _ := newTestService()

	spaceRepo.On("List", mock.Anything, true).Return([]*domain.Space{
		{ID: 1, Type: domain.SpaceSharedCoworking, IsActive: true},
	}, nil)

	resp, err := svc.ListSpaces(context.Background())

	require.NoError(t, err)
	assert.Len(t, resp.Spaces, 1)
	spaceRepo.AssertExpectations(t)
}

func TestCreateSpace_NonAdminDenied(t *testing.T) {
	svc, spaceRepo, _, userRepo := newTestService()

	userRepo.On("GetByID", mock.Anything, int64(5)).Return(client(5), nil)

	_, err := svc.CreateSpace(context.Background(), &models.CreateSpaceRequest{
		UserID:   5,
		Type:     string(domain.SpacePrivateOffice4),
		Name:     "Офис",
		Capacity: 4,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
	spaceRepo.AssertNotCalled(t, "Create")
}

func TestCreateSpace_UnknownType(t *testing.T) {
	svc, spaceRepo, _, userRepo := newTestService()

	userRepo.On("GetByID", mock.Anything, int64(99)).Return(admin(99), nil)

	_, err := svc.CreateSpace(context.Background(), &models.CreateSpaceRequest{
		UserID:   99,
		Type:     "rooftop_terrace",
		Name:     "Терраса",
		Capacity: 10,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	spaceRepo.AssertNotCalled(t, "Create")
}

func TestCreateSpace_InvalidCapacity(t *testing.T) {
	svc, spaceRepo, _, userRepo := newTestService()

	userRepo.On("GetByID", mock.Anything, int64(99)).Return(admin(99), nil)

	_, err := svc.CreateSpace(context.Background(), &models.CreateSpaceRequest{
		UserID:   99,
		Type:     string(domain.SpacePrivateOffice4),
		Name:     "Офис",
		Capacity: 0,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	spaceRepo.AssertNotCalled(t, "Create")
}

func TestCreateSpace_Admin(t *testing.T) {
	svc, spaceRepo, _, userRepo := newTestService()

	userRepo.On("GetByID", mock.Anything, int64(99)).Return(admin(99), nil)
	spaceRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Space) bool {
		return s.Type == domain.SpacePrivateOffice6 && s.IsActive
	})).Return(&domain.Space{ID: 3, Type: domain.SpacePrivateOffice6, IsActive: true}, nil)

	resp, err := svc.CreateSpace(context.Background(), &models.CreateSpaceRequest{
		UserID:      99,
		Type:        string(domain.SpacePrivateOffice6),
		Name:        "Офис на шестерых",
		Capacity:    6,
		HourlyPrice: 1800,
		DailyPrice:  9000,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	spaceRepo.AssertExpectations(t)
}

func TestUpdateSpace_PartialUpdate(t *testing.T) {
	svc, spaceRepo, _, userRepo := newTestService()

	userRepo.On("GetByID", mock.Anything, int64(99)).Return(admin(99), nil)
	spaceRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Space{
		ID:          3,
		Type:        domain.SpacePrivateOffice6,
		Name:        "Офис на шестерых",
		Capacity:    6,
		HourlyPrice: 1800,
		DailyPrice:  9000,
		IsActive:    true,
	}, nil)
	spaceRepo.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Space) bool {
		// Меняется только цена, остальные поля нетронуты
		return s.HourlyPrice == 2000 && s.Name == "Офис на шестерых" && s.Capacity == 6
	})).Return(nil)

	resp, err := svc.UpdateSpace(context.Background(), 3, &models.UpdateSpaceRequest{
		UserID:      99,
		HourlyPrice: ptr.Ptr(2000.0),
	})

	require.NoError(t, err)
	assert.Equal(t, 2000.0, resp.HourlyPrice)
	spaceRepo.AssertExpectations(t)
}

func TestDeleteSpace_NonAdminDenied(t *testing.T) {
	svc, spaceRepo, _, userRepo := newTestService()

	userRepo.On("GetByID", mock.Anything, int64(5)).Return(client(5), nil)

	err := svc.DeleteSpace(context.Background(), 3, 5)

	assert.ErrorIs(t, err, ErrAccessDenied)
	spaceRepo.AssertNotCalled(t, "Delete")
}

func TestCreatePass_NegativeBalanceRejected(t *testing.T) {
	svc, _, passRepo, userRepo := newTestService()

	userRepo.On("GetByID", mock.Anything, int64(99)).Return(admin(99), nil)

	_, err := svc.CreatePass(context.Background(), &models.CreatePassRequest{
		UserID:       99,
		Type:         "day_pack_10",
		Name:         "10 дней",
		Price:        15000,
		ValidityDays: 30,
		ServicesIncluded: domain.ServiceBalance{
			DayPasses: -1,
		},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	passRepo.AssertNotCalled(t, "Create")
}

func TestCreatePass_Admin(t *testing.T) {
	svc, _, passRepo, userRepo := newTestService()

	userRepo.On("GetByID", mock.Anything, int64(99)).Return(admin(99), nil)
	passRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Pass) bool {
		return p.Type == "day_pack_10" && p.IsActive
	})).Return(&domain.Pass{ID: 1, Type: "day_pack_10", IsActive: true}, nil)

	resp, err := svc.CreatePass(context.Background(), &models.CreatePassRequest{
		UserID:       99,
		Type:         "day_pack_10",
		Name:         "10 дней коворкинга",
		Price:        15000,
		ValidityDays: 30,
		ServicesIncluded: domain.ServiceBalance{
			DayPasses: 10,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}

func TestUpdatePass_Deactivate(t *testing.T) {
	svc, _, passRepo, userRepo := newTestService()

	userRepo.On("GetByID", mock.Anything, int64(99)).Return(admin(99), nil)
	passRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Pass{
		ID:           1,
		Type:         "day_pack_10",
		Name:         "10 дней коворкинга",
		Price:        15000,
		ValidityDays: 30,
		IsActive:     true,
	}, nil)
	passRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Pass) bool {
		return !p.IsActive && p.Price == 15000
	})).Return(nil)

	resp, err := svc.UpdatePass(context.Background(), 1, &models.UpdatePassRequest{
		UserID:   99,
		IsActive: ptr.Ptr(false),
	})

	require.NoError(t, err)
	assert.False(t, resp.IsActive)
	passRepo.AssertExpectations(t)
}

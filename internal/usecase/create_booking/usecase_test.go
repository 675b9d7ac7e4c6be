package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/pkg/ptr"
)

type MockSpaceRepository struct {
	mock.Mock
}

func (m *MockSpaceRepository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Space), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ExistsByConfirmationCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
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

func (m *MockUserRepository) UpdateActivePasses(ctx context.Context, id int64, passes []domain.ActivePass) error {
	args := m.Called(ctx, id, passes)
	return args.Error(0)
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

var testNow = time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

func testOffice() *domain.Space {
	return &domain.Space{
		ID:          7,
		Type:        domain.SpacePrivateOffice4,
		Name:        "Офис на четверых",
		Capacity:    4,
		HourlyPrice: 1200,
		DailyPrice:  6000,
		IsActive:    true,
	}
}

func testClient() *domain.User {
	return &domain.User{
		ID:   5,
		Role: domain.RoleClient,
	}
}

func newTestUseCase(
	spaceRepo *MockSpaceRepository,
	bookingRepo *MockBookingRepository,
	userRepo *MockUserRepository,
) *UseCase {
	uc := NewUseCase(spaceRepo, bookingRepo, userRepo, fakeTxManager{}, noopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc
}

func hourlyRequest() *Request {
	return &Request{
		UserID:        5,
		SpaceID:       7,
		BookingType:   domain.BookingHourly,
		BookingDate:   time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		StartHour:     ptr.Ptr(10),
		DurationHours: 3,
	}
}

func TestExecute_HourlySuccess(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)

	spaceRepo.On("GetByID", mock.Anything, int64(7)).Return(testOffice(), nil)
	userRepo.On("GetByID", mock.Anything, int64(5)).Return(testClient(), nil)
	bookingRepo.On("GetWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	bookingRepo.On("ExistsByConfirmationCode", mock.Anything, mock.Anything).Return(false, nil)
	bookingRepo.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: 1}, nil)

	uc := newTestUseCase(spaceRepo, bookingRepo, userRepo)

	resp, err := uc.Execute(context.Background(), hourlyRequest())

	require.NoError(t, err)
	require.NotNil(t, resp.Booking)

	created := bookingRepo.Calls[len(bookingRepo.Calls)-1].Arguments.Get(1).(*domain.Booking)
	assert.Equal(t, domain.StatusConfirmed, created.Status)
	assert.Equal(t, 10, created.StartHour)
	assert.Equal(t, 3, created.DurationHours)
	assert.Equal(t, 3600.0, created.Price) // 1200 руб/час * 3 часа
	assert.True(t, domain.IsValidConfirmationCode(created.ConfirmationCode))
	userRepo.AssertNotCalled(t, "UpdateActivePasses")
}

func TestExecute_SlotConflict(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)

	spaceRepo.On("GetByID", mock.Anything, int64(7)).Return(testOffice(), nil)
	userRepo.On("GetByID", mock.Anything, int64(5)).Return(testClient(), nil)
	// Занято 09:00-12:00 - пересекается с запрошенными 10:00-13:00
	bookingRepo.On("GetWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{
		{
			SpaceType:     domain.SpacePrivateOffice4,
			BookingType:   domain.BookingHourly,
			StartHour:     9,
			DurationHours: 3,
			Status:        domain.StatusConfirmed,
		},
	}, nil)

	uc := newTestUseCase(spaceRepo, bookingRepo, userRepo)

	_, err := uc.Execute(context.Background(), hourlyRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	bookingRepo.AssertNotCalled(t, "Create")
}

func TestExecute_DailyBlocksWholeDay(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)

	spaceRepo.On("GetByID", mock.Anything, int64(7)).Return(testOffice(), nil)
	userRepo.On("GetByID", mock.Anything, int64(5)).Return(testClient(), nil)
	// Один часовой слот в конце дня блокирует дневное бронирование
	bookingRepo.On("GetWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{
		{
			SpaceType:     domain.SpacePrivateOffice4,
			BookingType:   domain.BookingHourly,
			StartHour:     19,
			DurationHours: 1,
			Status:        domain.StatusConfirmed,
		},
	}, nil)

	uc := newTestUseCase(spaceRepo, bookingRepo, userRepo)

	req := hourlyRequest()
	req.BookingType = domain.BookingDaily
	req.StartHour = nil
	req.DurationHours = 0

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	bookingRepo.AssertNotCalled(t, "Create")
}

func TestExecute_PassNotApplicable(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)

	client := testClient()
	// Абонемент покрывает только коворкинг, не офис
	client.ActivePasses = []domain.ActivePass{
		{
			Type:              "day_pack_10",
			ServicesRemaining: domain.ServiceBalance{DayPasses: 10},
			ExpiresAt:         testNow.AddDate(0, 1, 0),
		},
	}

	spaceRepo.On("GetByID", mock.Anything, int64(7)).Return(testOffice(), nil)
	userRepo.On("GetByID", mock.Anything, int64(5)).Return(client, nil)
	bookingRepo.On("GetWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)

	uc := newTestUseCase(spaceRepo, bookingRepo, userRepo)

	req := hourlyRequest()
	req.UsePass = true

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrPassNotApplicable)
	userRepo.AssertNotCalled(t, "UpdateActivePasses")
	bookingRepo.AssertNotCalled(t, "Create")
}

func TestExecute_PassRedeemed(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)

	client := testClient()
	client.ActivePasses = []domain.ActivePass{
		{
			Type:              "office_hours_20",
			ServicesRemaining: domain.ServiceBalance{PrivateOfficeHours: 20},
			ExpiresAt:         testNow.AddDate(0, 1, 0),
		},
	}

	spaceRepo.On("GetByID", mock.Anything, int64(7)).Return(testOffice(), nil)
	userRepo.On("GetByID", mock.Anything, int64(5)).Return(client, nil)
	bookingRepo.On("GetWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	bookingRepo.On("ExistsByConfirmationCode", mock.Anything, mock.Anything).Return(false, nil)
	bookingRepo.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: 2}, nil)
	userRepo.On("UpdateActivePasses", mock.Anything, int64(5), mock.MatchedBy(func(passes []domain.ActivePass) bool {
		return len(passes) == 1 && passes[0].ServicesRemaining.PrivateOfficeHours == 17
	})).Return(nil)

	uc := newTestUseCase(spaceRepo, bookingRepo, userRepo)

	req := hourlyRequest()
	req.UsePass = true

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, resp.Booking)

	userRepo.AssertExpectations(t)

	var created *domain.Booking
	for _, call := range bookingRepo.Calls {
		if call.Method == "Create" {
			created = call.Arguments.Get(1).(*domain.Booking)
		}
	}
	require.NotNil(t, created)
	assert.Equal(t, 0.0, created.Price)
	require.NotNil(t, created.PassUsed)
	assert.Equal(t, "office_hours_20", *created.PassUsed)
}

func TestExecute_PastDateRejected(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)

	uc := newTestUseCase(spaceRepo, bookingRepo, userRepo)

	req := hourlyRequest()
	req.BookingDate = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
	spaceRepo.AssertNotCalled(t, "GetByID")
}

func TestExecute_ConfirmationCodeRetry(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	bookingRepo := new(MockBookingRepository)
	userRepo := new(MockUserRepository)

	spaceRepo.On("GetByID", mock.Anything, int64(7)).Return(testOffice(), nil)
	userRepo.On("GetByID", mock.Anything, int64(5)).Return(testClient(), nil)
	bookingRepo.On("GetWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	// Первый код занят, второй свободен
	bookingRepo.On("ExistsByConfirmationCode", mock.Anything, mock.Anything).Return(true, nil).Once()
	bookingRepo.On("ExistsByConfirmationCode", mock.Anything, mock.Anything).Return(false, nil).Once()
	bookingRepo.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: 3}, nil)

	uc := newTestUseCase(spaceRepo, bookingRepo, userRepo)

	resp, err := uc.Execute(context.Background(), hourlyRequest())

	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
	bookingRepo.AssertNumberOfCalls(t, "ExistsByConfirmationCode", 2)
}

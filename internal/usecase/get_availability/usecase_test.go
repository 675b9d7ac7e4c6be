package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	spaceStorage "github.com/m04kA/CWS-BookingService/internal/infra/storage/space"
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

func (m *MockBookingRepository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
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

func testDate() time.Time {
	return time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(spaceRepo *MockSpaceRepository, bookingRepo *MockBookingRepository) *UseCase {
	uc := NewUseCase(spaceRepo, bookingRepo, noopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_ValidationError(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	bookingRepo := new(MockBookingRepository)

	uc := newTestUseCase(spaceRepo, bookingRepo)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        1,
		SpaceID:       0,
		Date:          testDate(),
		DurationHours: 1,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	spaceRepo.AssertNotCalled(t, "GetByID")
	bookingRepo.AssertNotCalled(t, "GetWithFilter")
}

func TestExecute_SpaceNotFound(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	bookingRepo := new(MockBookingRepository)

	spaceRepo.On("GetByID", mock.Anything, int64(42)).
		Return(nil, spaceStorage.ErrSpaceNotFound)

	uc := newTestUseCase(spaceRepo, bookingRepo)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        1,
		SpaceID:       42,
		Date:          testDate(),
		DurationHours: 1,
	})

	assert.ErrorIs(t, err, ErrSpaceNotFound)
	bookingRepo.AssertNotCalled(t, "GetWithFilter")
}

func TestExecute_InactiveSpace(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	bookingRepo := new(MockBookingRepository)

	spaceRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Space{
		ID:       7,
		Type:     domain.SpacePrivateOffice4,
		IsActive: false,
	}, nil)

	uc := newTestUseCase(spaceRepo, bookingRepo)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        1,
		SpaceID:       7,
		Date:          testDate(),
		DurationHours: 2,
	})

	assert.ErrorIs(t, err, ErrSpaceNotFound)
	bookingRepo.AssertNotCalled(t, "GetWithFilter")
}

func TestExecute_OfficeReturnsIntervals(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	bookingRepo := new(MockBookingRepository)

	spaceRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Space{
		ID:       7,
		Type:     domain.SpacePrivateOffice4,
		IsActive: true,
	}, nil)
	bookingRepo.On("GetWithFilter", mock.Anything, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		return f.SpaceType != nil && *f.SpaceType == domain.SpacePrivateOffice4 && !f.IncludeInactive
	})).Return([]*domain.Booking{hourlyBooking(10, 2)}, nil)

	uc := newTestUseCase(spaceRepo, bookingRepo)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        1,
		SpaceID:       7,
		Date:          testDate(),
		DurationHours: 1,
	})

	require.NoError(t, err)
	assert.Nil(t, resp.Capacity)
	require.NotEmpty(t, resp.Intervals)
	for _, interval := range resp.Intervals {
		assert.NotContains(t, []int{10, 11}, interval.StartHour)
	}
}

func TestExecute_TodayExcludesStartedHours(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	bookingRepo := new(MockBookingRepository)

	spaceRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Space{
		ID:       7,
		Type:     domain.SpacePrivateOffice4,
		IsActive: true,
	}, nil)
	bookingRepo.On("GetWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)

	uc := newTestUseCase(spaceRepo, bookingRepo)
	// Сейчас 13:45 того же дня - слоты до 14:00 уже не предлагаются
	uc.timeProvider = fixedTimeProvider{now: time.Date(2026, 2, 10, 13, 45, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        1,
		SpaceID:       7,
		Date:          testDate(),
		DurationHours: 1,
	})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Intervals)
	assert.Equal(t, 14, resp.Intervals[0].StartHour)
}

func TestExecute_SharedCoworkingReturnsCapacity(t *testing.T) {
	spaceRepo := new(MockSpaceRepository)
	bookingRepo := new(MockBookingRepository)

	spaceRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.Space{
		ID:       1,
		Type:     domain.SpaceSharedCoworking,
		Capacity: 40,
		IsActive: true,
	}, nil)
	bookingRepo.On("GetWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{
		{BookingType: domain.BookingDaily, Status: domain.StatusConfirmed},
	}, nil)

	uc := newTestUseCase(spaceRepo, bookingRepo)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        1,
		SpaceID:       1,
		Date:          testDate(),
		DurationHours: 1,
	})

	require.NoError(t, err)
	assert.Nil(t, resp.Intervals)
	require.NotNil(t, resp.Capacity)
	assert.True(t, resp.Capacity.Available)
	assert.Equal(t, 39, resp.Capacity.RemainingSpots)
}

package purchase_pass

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	passStorage "github.com/m04kA/CWS-BookingService/internal/infra/storage/pass"
)

type MockPassRepository struct {
	mock.Mock
}

func (m *MockPassRepository) GetByType(ctx context.Context, passType string) (*domain.Pass, error) {
	args := m.Called(ctx, passType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pass), args.Error(1)
}

type MockSpaceRepository struct {
	mock.Mock
}

func (m *MockSpaceRepository) GetByType(ctx context.Context, spaceType domain.SpaceType) (*domain.Space, error) {
	args := m.Called(ctx, spaceType)
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

func (m *MockUserRepository) ApplyPurchase(ctx context.Context, id int64, passes []domain.ActivePass, amount float64) error {
	args := m.Called(ctx, id, passes, amount)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
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

func dayPack() *domain.Pass {
	return &domain.Pass{
		ID:               1,
		Type:             "day_pack_10",
		Name:             "10 дней коворкинга",
		Price:            15000,
		ValidityDays:     30,
		ServicesIncluded: domain.ServiceBalance{DayPasses: 10},
		IsActive:         true,
	}
}

func sharedSpace() *domain.Space {
	return &domain.Space{
		ID:       1,
		Type:     domain.SpaceSharedCoworking,
		Capacity: 40,
		IsActive: true,
	}
}

type mocks struct {
	passRepo    *MockPassRepository
	spaceRepo   *MockSpaceRepository
	bookingRepo *MockBookingRepository
	userRepo    *MockUserRepository
	paymentRepo *MockPaymentRepository
}

func newTestUseCase() (*UseCase, mocks) {
	m := mocks{
		passRepo:    new(MockPassRepository),
		spaceRepo:   new(MockSpaceRepository),
		bookingRepo: new(MockBookingRepository),
		userRepo:    new(MockUserRepository),
		paymentRepo: new(MockPaymentRepository),
	}
	uc := NewUseCase(m.passRepo, m.spaceRepo, m.bookingRepo, m.userRepo, m.paymentRepo,
		fakeTxManager{}, noopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc, m
}

func TestExecute_PassNotFound(t *testing.T) {
	uc, m := newTestUseCase()

	m.passRepo.On("GetByType", mock.Anything, "ghost").Return(nil, passStorage.ErrPassNotFound)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:   5,
		PassType: "ghost",
	})

	assert.ErrorIs(t, err, ErrPassNotFound)
	m.paymentRepo.AssertNotCalled(t, "Create")
}

func TestExecute_InactivePass(t *testing.T) {
	uc, m := newTestUseCase()

	pass := dayPack()
	pass.IsActive = false
	m.passRepo.On("GetByType", mock.Anything, "day_pack_10").Return(pass, nil)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:   5,
		PassType: "day_pack_10",
	})

	assert.ErrorIs(t, err, ErrPassNotFound)
	m.paymentRepo.AssertNotCalled(t, "Create")
}

func TestExecute_QuotaExceeded(t *testing.T) {
	uc, m := newTestUseCase()

	m.passRepo.On("GetByType", mock.Anything, "day_pack_10").Return(dayPack(), nil)

	days := make([]time.Time, 0, 11)
	for i := 1; i <= 11; i++ {
		days = append(days, testNow.AddDate(0, 0, i))
	}

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        5,
		PassType:      "day_pack_10",
		ScheduledDays: days,
	})

	assert.ErrorIs(t, err, ErrQuotaExceeded)
	m.paymentRepo.AssertNotCalled(t, "Create")
	m.userRepo.AssertNotCalled(t, "ApplyPurchase")
}

func TestExecute_SuccessWithScheduledDays(t *testing.T) {
	uc, m := newTestUseCase()

	m.passRepo.On("GetByType", mock.Anything, "day_pack_10").Return(dayPack(), nil)
	m.userRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5}, nil)
	m.paymentRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.Amount == 15000 && p.Status == domain.PaymentCompleted && p.ExternalRef != ""
	})).Return(&domain.Payment{ID: 100, Amount: 15000}, nil)
	m.spaceRepo.On("GetByType", mock.Anything, domain.SpaceSharedCoworking).Return(sharedSpace(), nil)
	m.bookingRepo.On("GetWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	m.bookingRepo.On("ExistsByConfirmationCode", mock.Anything, mock.Anything).Return(false, nil)
	m.bookingRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Price == 0 && b.Status == domain.StatusConfirmed &&
			b.PassUsed != nil && *b.PassUsed == "day_pack_10"
	})).Return(&domain.Booking{ID: 1}, nil)
	// Остаток: 10 дней минус 2 запланированных
	m.userRepo.On("ApplyPurchase", mock.Anything, int64(5),
		mock.MatchedBy(func(passes []domain.ActivePass) bool {
			return len(passes) == 1 && passes[0].ServicesRemaining.DayPasses == 8
		}), 15000.0).Return(nil)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:   5,
		PassType: "day_pack_10",
		ScheduledDays: []time.Time{
			testNow.AddDate(0, 0, 1),
			testNow.AddDate(0, 0, 2),
		},
	})

	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
	require.NotNil(t, resp.Pass)
	assert.Equal(t, 8, resp.Pass.ServicesRemaining.DayPasses)
	m.userRepo.AssertExpectations(t)
}

func TestExecute_FullyConsumedPassNotCredited(t *testing.T) {
	uc, m := newTestUseCase()

	pass := dayPack()
	pass.ServicesIncluded = domain.ServiceBalance{DayPasses: 1}
	m.passRepo.On("GetByType", mock.Anything, "day_pack_10").Return(pass, nil)
	m.userRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5}, nil)
	m.paymentRepo.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Payment{ID: 101, Amount: 15000}, nil)
	m.spaceRepo.On("GetByType", mock.Anything, domain.SpaceSharedCoworking).Return(sharedSpace(), nil)
	m.bookingRepo.On("GetWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)
	m.bookingRepo.On("ExistsByConfirmationCode", mock.Anything, mock.Anything).Return(false, nil)
	m.bookingRepo.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: 2}, nil)
	// Весь абонемент израсходован при покупке - остаток не зачисляется
	m.userRepo.On("ApplyPurchase", mock.Anything, int64(5),
		mock.MatchedBy(func(passes []domain.ActivePass) bool {
			return len(passes) == 0
		}), 15000.0).Return(nil)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:        5,
		PassType:      "day_pack_10",
		ScheduledDays: []time.Time{testNow.AddDate(0, 0, 1)},
	})

	require.NoError(t, err)
	assert.Nil(t, resp.Pass)
	m.userRepo.AssertExpectations(t)
}

func TestExecute_ScheduledDayCapacityConflict(t *testing.T) {
	uc, m := newTestUseCase()

	space := sharedSpace()
	space.Capacity = 1

	m.passRepo.On("GetByType", mock.Anything, "day_pack_10").Return(dayPack(), nil)
	m.userRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5}, nil)
	m.paymentRepo.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Payment{ID: 102, Amount: 15000}, nil)
	m.spaceRepo.On("GetByType", mock.Anything, domain.SpaceSharedCoworking).Return(space, nil)
	m.bookingRepo.On("GetWithFilter", mock.Anything, mock.Anything).Return([]*domain.Booking{
		{BookingType: domain.BookingDaily, Status: domain.StatusConfirmed},
	}, nil)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        5,
		PassType:      "day_pack_10",
		ScheduledDays: []time.Time{testNow.AddDate(0, 0, 1)},
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	m.bookingRepo.AssertNotCalled(t, "Create")
	m.userRepo.AssertNotCalled(t, "ApplyPurchase")
}

func TestExecute_ExpiredPassesPrunedOnPurchase(t *testing.T) {
	uc, m := newTestUseCase()

	user := &domain.User{
		ID: 5,
		ActivePasses: []domain.ActivePass{
			{
				Type:              "day_pack_10",
				ServicesRemaining: domain.ServiceBalance{DayPasses: 3},
				ExpiresAt:         testNow.AddDate(0, 0, -10),
			},
		},
	}

	m.passRepo.On("GetByType", mock.Anything, "day_pack_10").Return(dayPack(), nil)
	m.userRepo.On("GetByID", mock.Anything, int64(5)).Return(user, nil)
	m.paymentRepo.On("Create", mock.Anything, mock.Anything).
		Return(&domain.Payment{ID: 103, Amount: 15000}, nil)
	// Просроченный абонемент вычищен, новый зачислен целиком
	m.userRepo.On("ApplyPurchase", mock.Anything, int64(5),
		mock.MatchedBy(func(passes []domain.ActivePass) bool {
			return len(passes) == 1 && passes[0].ServicesRemaining.DayPasses == 10
		}), 15000.0).Return(nil)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:   5,
		PassType: "day_pack_10",
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Pass)
	assert.Equal(t, expiryDate(testNow, 30), resp.Pass.ExpiresAt)
	m.userRepo.AssertExpectations(t)
}

func TestExecute_PastScheduledDayRejected(t *testing.T) {
	uc, m := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{
		UserID:        5,
		PassType:      "day_pack_10",
		ScheduledDays: []time.Time{testNow.AddDate(0, 0, -1)},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
	m.passRepo.AssertNotCalled(t, "GetByType")
}

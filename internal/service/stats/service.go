package stats

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	userRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/user"
)

// StatsResponse ключевые показатели платформы
type StatsResponse struct {
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalMembers    int64   `json:"totalMembers"`
	TotalBookings   int64   `json:"totalBookings"`
	ActiveBookings  int64   `json:"activeBookings"`
	BookingsToday   int64   `json:"bookingsToday"`
	UtilizationRate float64 `json:"utilizationRate"` // процент от дневной емкости, округлен до целого
}

// Service сервис статистики для администраторов
type Service struct {
	bookingRepo BookingRepository
	paymentRepo PaymentRepository
	spaceRepo   SpaceRepository
	userRepo    UserRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	spaceRepo SpaceRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		spaceRepo:   spaceRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// GetStats собирает ключевые показатели платформы.
// Доступно только администраторам.
func (s *Service) GetStats(ctx context.Context, userID int64) (*StatsResponse, error) {
	s.logger.Info("GetStats: user=%d requesting platform stats", userID)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return nil, err
	}

	revenue, err := s.paymentRepo.TotalCompletedAmount(ctx)
	if err != nil {
		s.logger.Error("GetStats: failed to get revenue: %v", err)
		return nil, fmt.Errorf("%w: GetStats - failed to get revenue: %v", ErrInternal, err)
	}

	members, err := s.userRepo.CountByRole(ctx, domain.RoleClient)
	if err != nil {
		s.logger.Error("GetStats: failed to count members: %v", err)
		return nil, fmt.Errorf("%w: GetStats - failed to count members: %v", ErrInternal, err)
	}

	totalBookings, err := s.bookingRepo.CountAll(ctx, false)
	if err != nil {
		s.logger.Error("GetStats: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: GetStats - failed to count bookings: %v", ErrInternal, err)
	}

	activeBookings, err := s.bookingRepo.CountAll(ctx, true)
	if err != nil {
		s.logger.Error("GetStats: failed to count active bookings: %v", err)
		return nil, fmt.Errorf("%w: GetStats - failed to count active bookings: %v", ErrInternal, err)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	bookingsToday, err := s.bookingRepo.CountByDate(ctx, today, true)
	if err != nil {
		s.logger.Error("GetStats: failed to count today's bookings: %v", err)
		return nil, fmt.Errorf("%w: GetStats - failed to count today's bookings: %v", ErrInternal, err)
	}

	spaces, err := s.spaceRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("GetStats: failed to list spaces: %v", err)
		return nil, fmt.Errorf("%w: GetStats - failed to list spaces: %v", ErrInternal, err)
	}

	return &StatsResponse{
		TotalRevenue:    revenue,
		TotalMembers:    members,
		TotalBookings:   totalBookings,
		ActiveBookings:  activeBookings,
		BookingsToday:   bookingsToday,
		UtilizationRate: utilizationRate(bookingsToday, dailySlotCapacity(spaces)),
	}, nil
}

// dailySlotCapacity суммарная дневная емкость площадки: вместимость общего
// коворкинга плюс рабочее окно каждого офиса
func dailySlotCapacity(spaces []*domain.Space) int64 {
	var capacity int64
	for _, space := range spaces {
		if space.Type == domain.SpaceSharedCoworking {
			capacity += int64(space.Capacity)
		} else {
			capacity += int64(domain.SlotsPerDay)
		}
	}
	return capacity
}

// utilizationRate доля занятой дневной емкости в процентах
func utilizationRate(bookingsToday, capacity int64) float64 {
	if capacity == 0 {
		return 0
	}
	return math.Round(float64(bookingsToday) / float64(capacity) * 100)
}

// checkAdminAccess проверяет, что пользователь является администратором
func (s *Service) checkAdminAccess(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("checkAdminAccess: user id=%d not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("checkAdminAccess: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get user: %v", ErrInternal, err)
	}

	if !user.IsAdmin() {
		s.logger.Warn("checkAdminAccess: user=%d is not an admin", userID)
		return ErrAccessDenied
	}

	return nil
}

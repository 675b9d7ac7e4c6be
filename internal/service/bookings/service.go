package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/booking"
	userRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/user"
	"github.com/m04kA/CWS-BookingService/internal/service/bookings/models"
)

// Service сервис для чтения и отмены бронирований
type Service struct {
	bookingRepo BookingRepository
	userRepo    UserRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только своё бронирование,
// администратор видит все
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу. Свою историю видит каждый,
// чужую - только администратор.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: user=%d fetching bookings of user=%d, status=%v",
		req.UserID, req.TargetUserID, req.Status)

	if req.TargetUserID != req.UserID {
		if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
			s.logger.Warn("GetUserBookings: access denied for user=%d to history of user=%d",
				req.UserID, req.TargetUserID)
			return nil, err
		}
	}

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.TargetUserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.TargetUserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.TargetUserID)
	return models.FromDomainBookingList(bookings), nil
}

// Search ищет бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по пользователю, типу пространства, периоду, статусу
// и коду подтверждения (для ресепшена). Доступно только администраторам.
func (s *Service) Search(ctx context.Context, req *models.SearchBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("Search: user=%d searching bookings", req.UserID)

	// Проверяем права администратора
	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("Search: invalid filter from user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование, администратор - любое.
// Услуга, списанная с абонемента при создании, не возвращается.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return err
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Владелец имеет доступ всегда, остальным нужна роль администратора
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.UserID == userID {
		return nil
	}

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		// Ошибка уже залогирована в checkAdminAccess
		return ErrAccessDenied
	}

	return nil
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

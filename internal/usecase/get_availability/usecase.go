package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	spaceRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/space"
)

// UseCase use case для получения доступности пространства на дату
type UseCase struct {
	spaceRepo    SpaceRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	spaceRepo SpaceRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		spaceRepo:    spaceRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности.
// Функция не имеет побочных эффектов: результат полностью определяется
// снимком бронирований на дату и тип пространства.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: user=%d, space=%d, date=%s, duration=%dh",
		req.UserID, req.SpaceID, req.Date.Format(domain.DateFormat), req.DurationHours)

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем пространство
	space, err := uc.spaceRepo.GetByID(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("GetAvailability: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("GetAvailability: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	// Неактивное пространство недоступно для бронирования
	if !space.IsActive {
		uc.logger.Warn("GetAvailability: space id=%d is inactive", req.SpaceID)
		return nil, ErrSpaceNotFound
	}

	// 3. Получаем снимок активных бронирований на эту дату и тип пространства
	filter := domain.BookingsFilter{
		SpaceType:       &space.Type,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только активные бронирования
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	resp := &Response{
		SpaceID:       space.ID,
		SpaceType:     space.Type,
		Date:          req.Date,
		DurationHours: req.DurationHours,
	}

	// 4. Shared coworking - доступность по вместимости, офисы - по слотам
	if space.Type == domain.SpaceSharedCoworking {
		resp.Capacity = capacityStatus(space, bookings)
		uc.logger.Info("GetAvailability: space=%d capacity %d/%d remaining",
			req.SpaceID, resp.Capacity.RemainingSpots, resp.Capacity.Capacity)
		return resp, nil
	}

	// Для сегодняшней даты уже начавшиеся часы не предлагаются
	resp.Intervals = availableIntervals(bookings, req.DurationHours, firstCandidateHour(req.Date, now))

	uc.logger.Info("GetAvailability: space=%d, %d free intervals of %dh on %s",
		req.SpaceID, len(resp.Intervals), req.DurationHours, req.Date.Format(domain.DateFormat))

	return resp, nil
}

package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	spaceRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/space"
	userRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/user"
)

// UseCase use case для создания бронирования
type UseCase struct {
	spaceRepo    SpaceRepository
	bookingRepo  BookingRepository
	userRepo     UserRepository
	txManager    TxManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	spaceRepo SpaceRepository,
	bookingRepo BookingRepository,
	userRepo UserRepository,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		spaceRepo:    spaceRepo,
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и запись выполняются в одной сериализуемой транзакции:
// два конкурирующих запроса на один слот не могут пройти оба.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, space=%d, type=%s, date=%s",
		req.UserID, req.SpaceID, req.BookingType, req.BookingDate.Format(domain.DateFormat))

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var created *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем пространство
		space, err := uc.spaceRepo.GetByID(txCtx, req.SpaceID)
		if err != nil {
			if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
				return ErrSpaceNotFound
			}
			return fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
		}
		if !space.IsActive {
			return ErrSpaceNotFound
		}

		// 3. Получаем пользователя с блокировкой строки: баланс абонементов
		// не должен меняться параллельным запросом до конца транзакции
		user, err := uc.userRepo.GetByID(txCtx, req.UserID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
		}

		// 4. Снимок активных бронирований на дату и тип пространства
		filter := domain.BookingsFilter{
			SpaceType:       &space.Type,
			StartDate:       &req.BookingDate,
			EndDate:         &req.BookingDate,
			IncludeInactive: false,
		}
		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5. Проверяем доступность слота/вместимости
		if err := ensureAvailable(space, bookings, req); err != nil {
			uc.logger.Warn("CreateBooking: space=%d date=%s not available",
				req.SpaceID, req.BookingDate.Format(domain.DateFormat))
			return err
		}

		duration := req.DurationHours
		if req.BookingType != domain.BookingHourly {
			duration = 0
		}

		// 6. Оплата абонементом: списываем услугу с первого подходящего
		var passUsed *string
		if req.UsePass {
			passType, err := uc.redeemPass(txCtx, user, space.Type, req.DurationHours, now)
			if err != nil {
				return err
			}
			passUsed = &passType
		}

		// 7. Считаем стоимость
		price := domain.PriceFor(space, req.BookingType, req.DurationHours, req.UsePass)

		// 8. Генерируем уникальный код подтверждения
		code, err := uniqueConfirmationCode(txCtx, uc.bookingRepo)
		if err != nil {
			return fmt.Errorf("%w: failed to generate confirmation code: %v", ErrInternal, err)
		}

		startHour := domain.OpenHour
		if req.BookingType == domain.BookingHourly {
			startHour = *req.StartHour
		}

		// 9. Создаем бронирование
		booking := &domain.Booking{
			UserID:           req.UserID,
			SpaceType:        space.Type,
			BookingType:      req.BookingType,
			BookingDate:      req.BookingDate,
			StartHour:        startHour,
			DurationHours:    duration,
			Price:            price,
			Status:           domain.StatusConfirmed,
			PassUsed:         passUsed,
			ConfirmationCode: code,
			Guests:           req.Guests,
			Notes:            req.Notes,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if !isBusinessError(err) {
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: booking id=%d created, code=%s, price=%.2f",
		created.ID, created.ConfirmationCode, created.Price)

	return &Response{Booking: created}, nil
}

// redeemPass находит первый абонемент пользователя, покрывающий бронирование,
// списывает с него услугу и сохраняет обновленный баланс
func (uc *UseCase) redeemPass(
	ctx context.Context,
	user *domain.User,
	spaceType domain.SpaceType,
	durationHours int,
	now time.Time,
) (string, error) {
	eligible := domain.EligiblePasses(user.ActivePasses, spaceType, durationHours, now)
	if len(eligible) == 0 {
		uc.logger.Warn("CreateBooking: user=%d has no pass covering %s booking", user.ID, spaceType)
		return "", ErrPassNotApplicable
	}

	passType := eligible[0].Type
	updated := domain.DebitPasses(user.ActivePasses, passType, spaceType, durationHours)

	if err := uc.userRepo.UpdateActivePasses(ctx, user.ID, updated); err != nil {
		return "", fmt.Errorf("%w: failed to update passes: %v", ErrInternal, err)
	}

	return passType, nil
}

func isBusinessError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrSpaceNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrSlotNotAvailable) ||
		errors.Is(err, ErrPassNotApplicable)
}

package purchase_pass

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	passRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/pass"
	userRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/user"
)

// UseCase use case для покупки абонемента
type UseCase struct {
	passRepo     PassRepository
	spaceRepo    SpaceRepository
	bookingRepo  BookingRepository
	userRepo     UserRepository
	paymentRepo  PaymentRepository
	txManager    TxManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	passRepo PassRepository,
	spaceRepo SpaceRepository,
	bookingRepo BookingRepository,
	userRepo UserRepository,
	paymentRepo PaymentRepository,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		passRepo:     passRepo,
		spaceRepo:    spaceRepo,
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		paymentRepo:  paymentRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case покупки абонемента.
// Платеж, запланированные визиты и зачисление остатка выполняются
// в одной сериализуемой транзакции: либо всё, либо ничего.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PurchasePass: user=%d, pass=%s, days=%d, slots=%d",
		req.UserID, req.PassType, len(req.ScheduledDays), len(req.ScheduledSlots))

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("PurchasePass: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем тариф из каталога
		pass, err := uc.passRepo.GetByType(txCtx, req.PassType)
		if err != nil {
			if errors.Is(err, passRepo.ErrPassNotFound) {
				return ErrPassNotFound
			}
			return fmt.Errorf("%w: failed to get pass: %v", ErrInternal, err)
		}
		if !pass.IsActive {
			return ErrPassNotFound
		}

		// 3. Запланированные визиты не должны превышать квоты тарифа
		if err := validateQuotas(pass, req); err != nil {
			uc.logger.Warn("PurchasePass: user=%d: %v", req.UserID, err)
			return err
		}

		// 4. Получаем пользователя с блокировкой строки
		user, err := uc.userRepo.GetByID(txCtx, req.UserID)
		if err != nil {
			if errors.Is(err, userRepo.ErrUserNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
		}

		// 5. Фиксируем платеж
		payment, err := uc.paymentRepo.Create(txCtx, &domain.Payment{
			UserID:      req.UserID,
			Amount:      pass.Price,
			PassType:    pass.Type,
			Status:      domain.PaymentCompleted,
			ExternalRef: uuid.NewString(),
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
		}
		resp.Payment = payment

		// 6. Создаем запланированные визиты как бесплатные бронирования
		bookings, err := uc.scheduleVisits(txCtx, pass, req)
		if err != nil {
			return err
		}
		resp.Bookings = bookings

		// 7. Зачисляем остаток абонемента пользователю.
		// Полностью израсходованный при покупке абонемент не зачисляется.
		residual := domain.ResidualAfterUpfrontSchedule(
			pass, len(req.ScheduledDays), scheduledOfficeHours(req.ScheduledSlots))

		passes := domain.PruneExpiredPasses(user.ActivePasses, now)
		if !residual.IsZero() {
			active := domain.ActivePass{
				Type:              pass.Type,
				ServicesRemaining: residual,
				ExpiresAt:         expiryDate(now, pass.ValidityDays),
			}
			passes = append(passes, active)
			resp.Pass = &active
		}

		if err := uc.userRepo.ApplyPurchase(txCtx, req.UserID, passes, pass.Price); err != nil {
			return fmt.Errorf("%w: failed to apply purchase: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if !isBusinessError(err) {
			uc.logger.Error("PurchasePass: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("PurchasePass: user=%d bought %s for %.2f, %d visits scheduled",
		req.UserID, req.PassType, resp.Payment.Amount, len(resp.Bookings))

	return resp, nil
}

// scheduleVisits создает бронирования для заранее запланированных визитов:
// дневные в общем коворкинге и почасовые в офисах. Каждый визит проходит
// ту же проверку доступности, что и обычное бронирование.
func (uc *UseCase) scheduleVisits(ctx context.Context, pass *domain.Pass, req *Request) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0, len(req.ScheduledDays)+len(req.ScheduledSlots))

	for _, day := range req.ScheduledDays {
		space, err := uc.spaceRepo.GetByType(ctx, domain.SpaceSharedCoworking)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to get shared coworking space: %v", ErrInternal, err)
		}
		if !space.IsActive {
			return nil, ErrSlotNotAvailable
		}

		existing, err := uc.activeBookings(ctx, space.Type, day)
		if err != nil {
			return nil, err
		}
		if err := ensureDayFits(space, existing); err != nil {
			uc.logger.Warn("PurchasePass: no capacity on %s", day.Format(domain.DateFormat))
			return nil, err
		}

		booking, err := uc.createVisit(ctx, req.UserID, pass.Type, space.Type,
			domain.BookingDaily, day, domain.OpenHour, 0)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	for _, slot := range req.ScheduledSlots {
		space, err := uc.spaceRepo.GetByType(ctx, slot.SpaceType)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to get space %s: %v", ErrInternal, slot.SpaceType, err)
		}
		if !space.IsActive {
			return nil, ErrSlotNotAvailable
		}

		existing, err := uc.activeBookings(ctx, space.Type, slot.Date)
		if err != nil {
			return nil, err
		}
		if err := ensureSlotFits(slot, existing); err != nil {
			uc.logger.Warn("PurchasePass: slot %02d:00+%dh on %s busy",
				slot.StartHour, slot.DurationHours, slot.Date.Format(domain.DateFormat))
			return nil, err
		}

		booking, err := uc.createVisit(ctx, req.UserID, pass.Type, space.Type,
			domain.BookingHourly, slot.Date, slot.StartHour, slot.DurationHours)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// createVisit создает бесплатное подтвержденное бронирование по абонементу
func (uc *UseCase) createVisit(
	ctx context.Context,
	userID int64,
	passType string,
	spaceType domain.SpaceType,
	bookingType domain.BookingType,
	date time.Time,
	startHour, durationHours int,
) (*domain.Booking, error) {
	code, err := uniqueConfirmationCode(ctx, uc.bookingRepo)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to generate confirmation code: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		UserID:           userID,
		SpaceType:        spaceType,
		BookingType:      bookingType,
		BookingDate:      date,
		StartHour:        startHour,
		DurationHours:    durationHours,
		Price:            0, // визит оплачен покупкой абонемента
		Status:           domain.StatusConfirmed,
		PassUsed:         &passType,
		ConfirmationCode: code,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	return created, nil
}

// activeBookings снимок активных бронирований на дату и тип пространства
func (uc *UseCase) activeBookings(ctx context.Context, spaceType domain.SpaceType, date time.Time) ([]*domain.Booking, error) {
	filter := domain.BookingsFilter{
		SpaceType:       &spaceType,
		StartDate:       &date,
		EndDate:         &date,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	return bookings, nil
}

// expiryDate дата окончания действия абонемента
func expiryDate(now time.Time, validityDays int) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, validityDays)
}

func isBusinessError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPassNotFound) ||
		errors.Is(err, ErrQuotaExceeded) ||
		errors.Is(err, ErrSlotNotAvailable)
}

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	passRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/pass"
	spaceRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/space"
	userRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/user"
	"github.com/m04kA/CWS-BookingService/internal/service/catalog/models"
)

// Service сервис каталога: пространства и тарифы.
// Чтение доступно всем, изменение - только администраторам.
type Service struct {
	spaceRepo SpaceRepository
	passRepo  PassRepository
	userRepo  UserRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	spaceRepo SpaceRepository,
	passRepo PassRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		spaceRepo: spaceRepo,
		passRepo:  passRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Пространства

// ListSpaces возвращает активные пространства каталога
func (s *Service) ListSpaces(ctx context.Context) (*models.SpaceListResponse, error) {
	spaces, err := s.spaceRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("ListSpaces: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSpaces - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpaceList(spaces), nil
}

// GetSpace возвращает пространство по ID
func (s *Service) GetSpace(ctx context.Context, id int64) (*models.SpaceResponse, error) {
	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("GetSpace: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetSpace - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpace(space), nil
}

// CreateSpace создает пространство. Доступно только администраторам.
func (s *Service) CreateSpace(ctx context.Context, req *models.CreateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("CreateSpace: user=%d creating space type=%s", req.UserID, req.Type)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	spaceType := domain.SpaceType(req.Type)
	if !spaceType.IsValid() {
		return nil, fmt.Errorf("%w: unknown space type %q", ErrInvalidInput, req.Type)
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if req.HourlyPrice < 0 || req.DailyPrice < 0 {
		return nil, fmt.Errorf("%w: prices must not be negative", ErrInvalidInput)
	}

	space := &domain.Space{
		Type:        spaceType,
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		HourlyPrice: req.HourlyPrice,
		DailyPrice:  req.DailyPrice,
		IsActive:    true,
	}

	created, err := s.spaceRepo.Create(ctx, space)
	if err != nil {
		s.logger.Error("CreateSpace: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateSpace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSpace: space id=%d created", created.ID)
	return models.FromDomainSpace(created), nil
}

// UpdateSpace обновляет пространство. Доступно только администраторам.
func (s *Service) UpdateSpace(ctx context.Context, id int64, req *models.UpdateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("UpdateSpace: user=%d updating space id=%d", req.UserID, id)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("UpdateSpace: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateSpace - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		space.Name = *req.Name
	}
	if req.Description != nil {
		space.Description = req.Description
	}
	if req.Capacity != nil {
		if *req.Capacity <= 0 {
			return nil, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
		}
		space.Capacity = *req.Capacity
	}
	if req.HourlyPrice != nil {
		if *req.HourlyPrice < 0 {
			return nil, fmt.Errorf("%w: hourlyPrice must not be negative", ErrInvalidInput)
		}
		space.HourlyPrice = *req.HourlyPrice
	}
	if req.DailyPrice != nil {
		if *req.DailyPrice < 0 {
			return nil, fmt.Errorf("%w: dailyPrice must not be negative", ErrInvalidInput)
		}
		space.DailyPrice = *req.DailyPrice
	}
	if req.IsActive != nil {
		space.IsActive = *req.IsActive
	}

	if err := s.spaceRepo.Update(ctx, space); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("UpdateSpace: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateSpace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSpace: space id=%d updated", id)
	return models.FromDomainSpace(space), nil
}

// DeleteSpace удаляет пространство. Доступно только администраторам.
// Существующие бронирования не затрагиваются.
func (s *Service) DeleteSpace(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("DeleteSpace: user=%d deleting space id=%d", userID, id)

	if err := s.checkAdminAccess(ctx, userID); err != nil {
		return err
	}

	if err := s.spaceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			return ErrSpaceNotFound
		}
		s.logger.Error("DeleteSpace: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteSpace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSpace: space id=%d deleted", id)
	return nil
}

// Тарифы

// ListPasses возвращает активные тарифы каталога
func (s *Service) ListPasses(ctx context.Context) (*models.PassListResponse, error) {
	passes, err := s.passRepo.List(ctx, true)
	if err != nil {
		s.logger.Error("ListPasses: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPasses - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPassList(passes), nil
}

// CreatePass создает тариф. Доступно только администраторам.
func (s *Service) CreatePass(ctx context.Context, req *models.CreatePassRequest) (*models.PassResponse, error) {
	s.logger.Info("CreatePass: user=%d creating pass type=%s", req.UserID, req.Type)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	if err := validatePassFields(req.Type, req.Name, req.Price, req.ValidityDays, req.ServicesIncluded); err != nil {
		return nil, err
	}

	pass := &domain.Pass{
		Type:             req.Type,
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		ValidityDays:     req.ValidityDays,
		ServicesIncluded: req.ServicesIncluded,
		Features:         req.Features,
		IsActive:         true,
	}

	created, err := s.passRepo.Create(ctx, pass)
	if err != nil {
		s.logger.Error("CreatePass: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreatePass - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreatePass: pass id=%d created", created.ID)
	return models.FromDomainPass(created), nil
}

// UpdatePass обновляет тариф. Доступно только администраторам.
// Уже купленные абонементы сохраняют условия на момент покупки.
func (s *Service) UpdatePass(ctx context.Context, id int64, req *models.UpdatePassRequest) (*models.PassResponse, error) {
	s.logger.Info("UpdatePass: user=%d updating pass id=%d", req.UserID, id)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	pass, err := s.passRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, passRepo.ErrPassNotFound) {
			return nil, ErrPassNotFound
		}
		s.logger.Error("UpdatePass: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdatePass - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		pass.Name = *req.Name
	}
	if req.Description != nil {
		pass.Description = req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
		}
		pass.Price = *req.Price
	}
	if req.ValidityDays != nil {
		if *req.ValidityDays <= 0 {
			return nil, fmt.Errorf("%w: validityDays must be positive", ErrInvalidInput)
		}
		pass.ValidityDays = *req.ValidityDays
	}
	if req.ServicesIncluded != nil {
		if err := validateServiceBalance(*req.ServicesIncluded); err != nil {
			return nil, err
		}
		pass.ServicesIncluded = *req.ServicesIncluded
	}
	if req.Features != nil {
		pass.Features = req.Features
	}
	if req.IsActive != nil {
		pass.IsActive = *req.IsActive
	}

	if err := s.passRepo.Update(ctx, pass); err != nil {
		if errors.Is(err, passRepo.ErrPassNotFound) {
			return nil, ErrPassNotFound
		}
		s.logger.Error("UpdatePass: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdatePass - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePass: pass id=%d updated", id)
	return models.FromDomainPass(pass), nil
}

// Вспомогательные методы

func validatePassFields(passType, name string, price float64, validityDays int, services domain.ServiceBalance) error {
	if passType == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if validityDays <= 0 {
		return fmt.Errorf("%w: validityDays must be positive", ErrInvalidInput)
	}
	return validateServiceBalance(services)
}

func validateServiceBalance(b domain.ServiceBalance) error {
	if b.DayPasses < 0 || b.PrivateOfficeHours < 0 || b.MeetingRoomHours < 0 {
		return fmt.Errorf("%w: service quotas must not be negative", ErrInvalidInput)
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

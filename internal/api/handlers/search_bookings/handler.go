package search_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/api/middleware"
	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/internal/service/bookings"
	"github.com/m04kA/CWS-BookingService/internal/service/bookings/models"
)

const (
	msgUnauthorized  = "требуется аутентификация"
	msgForbidden     = "доступ запрещен"
	msgInvalidUserID = "некорректный ID пользователя"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректные параметры фильтрации"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: userId, spaceType, startDate, endDate, status,
// confirmationCode, includeInactive (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req := &models.SearchBookingsRequest{UserID: userID}
	query := r.URL.Query()

	if targetStr := query.Get("userId"); targetStr != "" {
		target, err := strconv.ParseInt(targetStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid userId filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUserID)
			return
		}
		req.TargetUserID = &target
	}

	if spaceType := query.Get("spaceType"); spaceType != "" {
		req.SpaceType = &spaceType
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid startDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if code := query.Get("confirmationCode"); code != "" {
		req.ConfirmationCode = &code
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	result, err := h.service.Search(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied), errors.Is(err, bookings.ErrUserNotFound):
			h.logger.Warn("GET /admin/bookings - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/bookings - Failed to search bookings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved: user_id=%d, count=%d", userID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/api/middleware"
	"github.com/m04kA/CWS-BookingService/internal/service/bookings"
	"github.com/m04kA/CWS-BookingService/internal/service/bookings/models"
)

const (
	msgUnauthorized  = "требуется аутентификация"
	msgInvalidUserID = "некорректный ID пользователя"
	msgInvalidStatus = "некорректный статус бронирования"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/users/{userId}/bookings
// Query params: status (optional)
// Свою историю видит каждый, чужую - только администратор.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	vars := mux.Vars(r)
	targetUserIDStr := vars["userId"]

	targetUserID, err := strconv.ParseInt(targetUserIDStr, 10, 64)
	if err != nil || targetUserID <= 0 {
		h.logger.Warn("GET /users/{id}/bookings - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	req := &models.GetUserBookingsRequest{
		UserID:       userID,
		TargetUserID: targetUserID,
	}
	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		req.Status = &statusStr
	}

	result, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/bookings - Invalid status filter: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrAccessDenied), errors.Is(err, bookings.ErrUserNotFound):
			h.logger.Warn("GET /users/{id}/bookings - Access denied: user_id=%d, target_user_id=%d",
				userID, targetUserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /users/{id}/bookings - Failed to get bookings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/bookings - Bookings retrieved: user_id=%d, target_user_id=%d, count=%d",
		userID, targetUserID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}

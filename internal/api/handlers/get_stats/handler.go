package get_stats

import (
	"errors"
	"net/http"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/api/middleware"
	"github.com/m04kA/CWS-BookingService/internal/service/stats"
)

const (
	msgUnauthorized = "требуется аутентификация"
	msgForbidden    = "доступ запрещен"
)

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.GetStats(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, stats.ErrAccessDenied), errors.Is(err, stats.ErrUserNotFound):
			h.logger.Warn("GET /admin/stats - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /admin/stats - Failed to get stats: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/stats - Stats retrieved: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

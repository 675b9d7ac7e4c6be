package list_passes

import (
	"net/http"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/passes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListPasses(r.Context())
	if err != nil {
		h.logger.Error("GET /passes - Failed to list passes: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /passes - Passes retrieved: count=%d", len(result.Passes))
	handlers.RespondJSON(w, http.StatusOK, result)
}

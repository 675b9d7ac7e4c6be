package get_space

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/service/catalog"
)

const (
	msgInvalidSpaceID = "некорректный ID пространства"
	msgNotFound       = "пространство не найдено"
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

// Handle GET /api/v1/spaces/{spaceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	spaceIDStr := vars["spaceId"]

	spaceID, err := strconv.ParseInt(spaceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /spaces/{id} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	space, err := h.service.GetSpace(r.Context(), spaceID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/{id} - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /spaces/{id} - Failed to get space: space_id=%d, error=%v", spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /spaces/{id} - Space retrieved: space_id=%d", spaceID)
	handlers.RespondJSON(w, http.StatusOK, space)
}

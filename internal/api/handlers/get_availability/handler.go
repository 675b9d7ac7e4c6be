package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/api/middleware"
	getAvailability "github.com/m04kA/CWS-BookingService/internal/usecase/get_availability"
)

const (
	msgInvalidSpaceID  = "некорректный ID пространства"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration = "некорректная длительность"
	msgSpaceNotFound   = "пространство не найдено"
	msgInvalidInput    = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceId}/availability
// Query params: date (required, YYYY-MM-DD), duration (optional, hours, default 1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем spaceId из URL
	spaceIDStr := vars["spaceId"]
	spaceID, err := strconv.ParseInt(spaceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/availability - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /spaces/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Длительность опциональна, по умолчанию один час
	durationHours := 1
	if durationStr := r.URL.Query().Get("duration"); durationStr != "" {
		durationHours, err = strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /spaces/{id}/availability - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	// Endpoint публичный, ID пользователя может отсутствовать
	userID, _ := middleware.UserID(r.Context())

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(userID, spaceID, dateStr, durationHours)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrSpaceNotFound):
			h.logger.Warn("GET /spaces/{id}/availability - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /spaces/{id}/availability - Invalid input: space_id=%d, error=%v", spaceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /spaces/{id}/availability - Failed to get availability: space_id=%d, error=%v",
				spaceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /spaces/{id}/availability - Availability retrieved: space_id=%d, date=%s, intervals=%d",
		spaceID, dateStr, len(response.Intervals))
	handlers.RespondJSON(w, http.StatusOK, response)
}

package purchase_pass

import (
	"errors"
	"net/http"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/api/middleware"
	purchasePass "github.com/m04kA/CWS-BookingService/internal/usecase/purchase_pass"
)

const (
	msgUnauthorized       = "требуется аутентификация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры покупки"
	msgUserNotFound       = "пользователь не найден"
	msgPassNotFound       = "тариф не найден"
	msgQuotaExceeded      = "запланированные визиты превышают квоты тарифа"
	msgSlotNotAvailable   = "один из запланированных визитов недоступен"
)

type Handler struct {
	useCase PurchasePassUseCase
	logger  Logger
}

func NewHandler(useCase PurchasePassUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/passes/purchase
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req PurchasePassRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /passes/purchase - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /passes/purchase - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, purchasePass.ErrPassNotFound):
			h.logger.Warn("POST /passes/purchase - Pass not found: pass_type=%s", req.PassType)
			handlers.RespondNotFound(w, msgPassNotFound)

		case errors.Is(err, purchasePass.ErrUserNotFound):
			h.logger.Warn("POST /passes/purchase - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, purchasePass.ErrQuotaExceeded):
			h.logger.Warn("POST /passes/purchase - Quota exceeded: user_id=%d, pass_type=%s", userID, req.PassType)
			handlers.RespondUnprocessable(w, msgQuotaExceeded)

		case errors.Is(err, purchasePass.ErrSlotNotAvailable):
			h.logger.Warn("POST /passes/purchase - Scheduled visit not available: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, purchasePass.ErrInvalidInput):
			h.logger.Warn("POST /passes/purchase - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /passes/purchase - Failed to purchase pass: user_id=%d, pass_type=%s, error=%v",
				userID, req.PassType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /passes/purchase - Pass purchased successfully: user_id=%d, pass_type=%s, payment_id=%d",
		userID, req.PassType, response.PaymentID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

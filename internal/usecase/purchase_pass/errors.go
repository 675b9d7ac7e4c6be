package purchase_pass

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrUserNotFound пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrPassNotFound тариф не найден или снят с продажи
	ErrPassNotFound = errors.New("pass not found")

	// ErrQuotaExceeded заранее запланированные визиты превышают квоты тарифа
	ErrQuotaExceeded = errors.New("quota exceeded")

	// ErrSlotNotAvailable один из запланированных визитов не помещается в расписание
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)

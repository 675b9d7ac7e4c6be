package create_booking

import "errors"

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrSpaceNotFound пространство не найдено или неактивно
	ErrSpaceNotFound = errors.New("space not found")

	// ErrUserNotFound пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrSlotNotAvailable запрошенный слот или вместимость заняты
	ErrSlotNotAvailable = errors.New("slot not available")

	// ErrPassNotApplicable у пользователя нет абонемента, покрывающего бронирование
	ErrPassNotApplicable = errors.New("pass not applicable")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal error")
)

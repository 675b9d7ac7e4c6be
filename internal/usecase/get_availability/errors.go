package get_availability

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда пространство не найдено или неактивно
	ErrSpaceNotFound = errors.New("get_availability: space not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)

package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

// maxCodeAttempts максимум попыток сгенерировать уникальный код
const maxCodeAttempts = 5

// uniqueConfirmationCode генерирует код, отсутствующий в базе.
// Коллизии крайне редки, но уникальность кода критична для поиска
// бронирования на ресепшене, поэтому проверяем и повторяем.
func uniqueConfirmationCode(ctx context.Context, repo BookingRepository) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := domain.GenerateConfirmationCode()
		if err != nil {
			return "", err
		}

		exists, err := repo.ExistsByConfirmationCode(ctx, code)
		if err != nil {
			return "", fmt.Errorf("check confirmation code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}

	return "", fmt.Errorf("no unique confirmation code after %d attempts", maxCodeAttempts)
}

package list_spaces

import (
	"context"

	"github.com/m04kA/CWS-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListSpaces(ctx context.Context) (*models.SpaceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

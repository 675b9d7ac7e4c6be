package list_passes

import (
	"context"

	"github.com/m04kA/CWS-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListPasses(ctx context.Context) (*models.PassListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

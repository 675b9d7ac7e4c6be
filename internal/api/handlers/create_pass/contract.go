package create_pass

import (
	"context"

	"github.com/m04kA/CWS-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	CreatePass(ctx context.Context, req *models.CreatePassRequest) (*models.PassResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

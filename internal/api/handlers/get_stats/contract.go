package get_stats

import (
	"context"

	"github.com/m04kA/CWS-BookingService/internal/service/stats"
)

type StatsService interface {
	GetStats(ctx context.Context, userID int64) (*stats.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

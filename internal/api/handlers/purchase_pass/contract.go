package purchase_pass

import (
	"context"

	purchasePass "github.com/m04kA/CWS-BookingService/internal/usecase/purchase_pass"
)

type PurchasePassUseCase interface {
	Execute(ctx context.Context, req *purchasePass.Request) (*purchasePass.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package create_blocked_date

import (
	"context"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/spaces/models"
)

type SpaceService interface {
	AddBlock(ctx context.Context, req *models.AddBlockRequest) (*models.BlockedDateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

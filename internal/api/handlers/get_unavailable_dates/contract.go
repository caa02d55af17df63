package get_unavailable_dates

import (
	"context"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/spaces/models"
)

type SpaceService interface {
	UnavailableDates(ctx context.Context, spaceID int64) (*models.UnavailableDatesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

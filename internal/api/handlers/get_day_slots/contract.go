package get_day_slots

import (
	"context"

	usecase "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/usecase/get_day_slots"
)

type DaySlotsUseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

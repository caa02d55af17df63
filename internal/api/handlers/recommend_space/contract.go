package recommend_space

import (
	"context"

	usecase "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/usecase/recommend_space"
)

type RecommendUseCase interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

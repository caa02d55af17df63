package get_admin_bookings

import (
	"context"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/bookings/models"
)

type BookingService interface {
	GetAllWithFilter(ctx context.Context, req *models.GetAdminBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

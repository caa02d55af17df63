package create_booking

import (
	"fmt"
	"time"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	usecase "github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/usecase/create_booking"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/pkg/types"
)

// CreateBookingRequest is the HTTP request model.
type CreateBookingRequest struct {
	SpaceID       int64  `json:"spaceId"`
	Date          string `json:"date"`      // "2026-09-10"
	StartTime     string `json:"startTime"` // "10:00"
	EndTime       string `json:"endTime"`   // "12:00"
	ExpectedCount int    `json:"expectedCount"`
	Purpose       string `json:"purpose"`
}

// ToUseCaseRequest parses the wire fields and builds the use case
// request for the authenticated user.
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*usecase.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse start time: %w", err)
	}

	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("parse end time: %w", err)
	}

	return &usecase.Request{
		UserID:        userID,
		SpaceID:       r.SpaceID,
		Date:          date,
		StartTime:     start,
		EndTime:       end,
		ExpectedCount: r.ExpectedCount,
		Purpose:       r.Purpose,
	}, nil
}

// CreateBookingResponse is the HTTP response model.
type CreateBookingResponse struct {
	ID            int64  `json:"id"`
	SpaceID       int64  `json:"spaceId"`
	SpaceName     string `json:"spaceName"`
	UserID        int64  `json:"userId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	ExpectedCount int    `json:"expectedCount"`
	Purpose       string `json:"purpose"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"` // ISO 8601
}

// FromUseCaseResponse converts the use case result into the HTTP model.
func FromUseCaseResponse(resp *usecase.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:            resp.ID,
		SpaceID:       resp.SpaceID,
		SpaceName:     resp.SpaceName,
		UserID:        resp.UserID,
		Date:          resp.Date.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		ExpectedCount: resp.ExpectedCount,
		Purpose:       resp.Purpose,
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}

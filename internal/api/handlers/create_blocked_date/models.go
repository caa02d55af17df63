package create_blocked_date

import (
	"fmt"
	"time"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/spaces/models"
)

// CreateBlockedDateRequest is the HTTP request model. A nil SpaceID
// blocks the date campus-wide.
type CreateBlockedDateRequest struct {
	SpaceID *int64 `json:"spaceId,omitempty"`
	Date    string `json:"date"` // "2026-09-10"
	Reason  string `json:"reason"`
}

// ToServiceRequest parses the wire fields and builds the service
// request.
func (r *CreateBlockedDateRequest) ToServiceRequest(caller models.Caller) (*models.AddBlockRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	return &models.AddBlockRequest{
		Caller:  caller,
		SpaceID: r.SpaceID,
		Date:    date,
		Reason:  r.Reason,
	}, nil
}

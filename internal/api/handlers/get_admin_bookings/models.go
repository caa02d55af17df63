package get_admin_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/domain"
	"github.com/Merlin26022004/Rajagiri-Hall-Booking-System/internal/service/bookings/models"
)

// parseQuery builds the service request from the dashboard filters.
//
//	?spaceId=3&from=2026-09-01&to=2026-09-30&status=pending&includeInactive=true
func parseQuery(values url.Values, caller models.Caller) (*models.GetAdminBookingsRequest, error) {
	req := &models.GetAdminBookingsRequest{Caller: caller}

	if raw := values.Get("spaceId"); raw != "" {
		spaceID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse spaceId: %w", err)
		}
		req.SpaceID = &spaceID
	}

	if raw := values.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("parse from: %w", err)
		}
		req.StartDate = &from
	}

	if raw := values.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("parse to: %w", err)
		}
		req.EndDate = &to
	}

	if status := values.Get("status"); status != "" {
		req.Status = &status
	}

	if raw := values.Get("includeInactive"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("parse includeInactive: %w", err)
		}
		req.IncludeInactive = include
	}

	return req, nil
}

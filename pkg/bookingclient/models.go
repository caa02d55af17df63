package bookingclient

// FacilityInfo is a facility attached to a space.
type FacilityInfo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SpaceInfo is one bookable space.
type SpaceInfo struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Location    string         `json:"location"`
	Capacity    int            `json:"capacity"`
	Description string         `json:"description,omitempty"`
	Facilities  []FacilityInfo `json:"facilities"`
}

// SpaceList is the space catalog.
type SpaceList struct {
	Spaces []SpaceInfo `json:"spaces"`
}

// UnavailableDates lists future dates a space cannot be booked.
type UnavailableDates struct {
	SpaceID int64    `json:"spaceId"`
	Dates   []string `json:"dates"`
}

// BookedInterval is one occupied stretch of a day.
type BookedInterval struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// DaySlots is one space's schedule on one date.
type DaySlots struct {
	SpaceID   int64            `json:"spaceId"`
	Date      string           `json:"date"`
	Blocked   bool             `json:"blocked"`
	Intervals []BookedInterval `json:"intervals"`
}

// FormOption is one entry of the rendered space picker.
type FormOption struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
	Selected bool   `json:"selected"`
}

// FormState is the widget state the frontend applies verbatim.
type FormState struct {
	Options       []FormOption `json:"options"`
	BannerKind    string       `json:"bannerKind"`
	BannerText    string       `json:"bannerText,omitempty"`
	SubmitEnabled bool         `json:"submitEnabled"`
	SubmitLabel   string       `json:"submitLabel"`
}

// RecommendedSpace is the winning candidate in a best-fit
// recommendation.
type RecommendedSpace struct {
	SpaceID  int64  `json:"spaceId"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Surplus  int    `json:"surplus"`
}

// Recommendation is the evaluation outcome for one headcount input.
type Recommendation struct {
	Kind          string            `json:"kind"` // "empty", "best_fit" or "no_fit"
	RequiredCount int               `json:"requiredCount"`
	Best          *RecommendedSpace `json:"best,omitempty"`
	Form          FormState         `json:"form"`
}

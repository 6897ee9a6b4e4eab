package event

import "time"

type HostEventRequest struct {
	Title       string    `json:"title" validate:"required,min=3,max=120"`
	Destination string    `json:"destination" validate:"required,max=120"`
	Description string    `json:"description" validate:"max=2000"`
	StartDate   time.Time `json:"startDate" validate:"required"`
	EndDate     time.Time `json:"endDate" validate:"required,gtfield=StartDate"`
	Capacity    int       `json:"capacity" validate:"required,gte=1,lte=500"`
}

// HostEventPayload is what the backend receives.
type HostEventPayload struct {
	HostID      string    `json:"hostId"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Capacity    int       `json:"capacity"`
}

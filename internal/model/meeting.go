package model

import "time"

// Meeting Types
type MeetingType string

const (
	MeetingTypePropertyViewing    MeetingType = "property_viewing"
	MeetingTypeContractDiscussion MeetingType = "contract_discussion"
	MeetingTypeConsultation       MeetingType = "consultation"
)

// Meeting Status
type MeetingStatus string

const (
	MeetingStatusScheduled MeetingStatus = "scheduled"
	MeetingStatusCompleted MeetingStatus = "completed"
	MeetingStatusCancelled MeetingStatus = "cancelled"
)

// Meeting ties to one client identity: either ClientID or the external
// client triple. The form layer enforces that, not storage.
type Meeting struct {
	ID                  int           `json:"id"`
	Title               string        `json:"title"`
	Description         *string       `json:"description"`
	ClientID            *int          `json:"clientId"`
	PropertyID          *int          `json:"propertyId"`
	ScheduledAt         time.Time     `json:"scheduledAt"`
	Duration            *int          `json:"duration"` // minutes
	Location            *string       `json:"location"`
	Type                MeetingType   `json:"type"`
	Status              MeetingStatus `json:"status"`
	ExternalClientName  *string       `json:"externalClientName"` // for non-existing clients
	ExternalClientEmail *string       `json:"externalClientEmail"`
	ExternalClientPhone *string       `json:"externalClientPhone"`
	CreatedAt           time.Time     `json:"createdAt"`
}

type InsertMeeting struct {
	Title               string         `json:"title" validate:"required"`
	Description         *string        `json:"description"`
	ClientID            *int           `json:"clientId"`
	PropertyID          *int           `json:"propertyId"`
	ScheduledAt         time.Time      `json:"scheduledAt" validate:"required"`
	Duration            *int           `json:"duration" validate:"omitempty,min=1"`
	Location            *string        `json:"location"`
	Type                *MeetingType   `json:"type" validate:"omitempty,oneof=property_viewing contract_discussion consultation"`
	Status              *MeetingStatus `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	ExternalClientName  *string        `json:"externalClientName"`
	ExternalClientEmail *string        `json:"externalClientEmail" validate:"omitempty,email"`
	ExternalClientPhone *string        `json:"externalClientPhone"`
}

type UpdateMeeting struct {
	Title               *string        `json:"title"`
	Description         *string        `json:"description"`
	ClientID            *int           `json:"clientId"`
	PropertyID          *int           `json:"propertyId"`
	ScheduledAt         *time.Time     `json:"scheduledAt"`
	Duration            *int           `json:"duration" validate:"omitempty,min=1"`
	Location            *string        `json:"location"`
	Type                *MeetingType   `json:"type" validate:"omitempty,oneof=property_viewing contract_discussion consultation"`
	Status              *MeetingStatus `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	ExternalClientName  *string        `json:"externalClientName"`
	ExternalClientEmail *string        `json:"externalClientEmail" validate:"omitempty,email"`
	ExternalClientPhone *string        `json:"externalClientPhone"`

	provided map[string]bool
}

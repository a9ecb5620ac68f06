package model

import "time"

// Client Status
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusProspect ClientStatus = "prospect"
)

// Visa Status
type VisaStatus string

const (
	VisaStatusValid       VisaStatus = "valid"
	VisaStatusExpired     VisaStatus = "expired"
	VisaStatusPending     VisaStatus = "pending"
	VisaStatusNotRequired VisaStatus = "not_required"
)

// Client Source
type ClientSource string

const (
	ClientSourceReferral    ClientSource = "referral"
	ClientSourceWebsite     ClientSource = "website"
	ClientSourceSocialMedia ClientSource = "social_media"
	ClientSourceDirect      ClientSource = "direct"
)

// Client Type
type ClientType string

const (
	ClientTypeBuyer    ClientType = "buyer"
	ClientTypeSeller   ClientType = "seller"
	ClientTypeInvestor ClientType = "investor"
	ClientTypeTenant   ClientType = "tenant"
	ClientTypeLandlord ClientType = "landlord"
)

type Client struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Nationality  *string       `json:"nationality"`
	Phone        *string       `json:"phone"`
	Email        string        `json:"email"`
	PassportCopy *string       `json:"passportCopy"` // file path/URL or inline data
	EmiratesID   *string       `json:"emiratesId"`
	VisaCopy     *string       `json:"visaCopy"`
	VisaStatus   *VisaStatus   `json:"visaStatus"`
	Source       *ClientSource `json:"source"`
	ClientType   *ClientType   `json:"clientType"`
	Notes        *string       `json:"notes"`
	Company      *string       `json:"company"`
	Status       ClientStatus  `json:"status"`
	CustomFields *string       `json:"customFields"` // JSON string for dynamic fields
	CreatedAt    time.Time     `json:"createdAt"`
}

// InsertClient is the client shape accepted at creation: server-assigned
// fields (id, createdAt) are absent and optionals carry their nullability.
type InsertClient struct {
	Name         string        `json:"name" validate:"required"`
	Nationality  *string       `json:"nationality"`
	Phone        *string       `json:"phone"`
	Email        string        `json:"email" validate:"required,email"`
	PassportCopy *string       `json:"passportCopy"`
	EmiratesID   *string       `json:"emiratesId"`
	VisaCopy     *string       `json:"visaCopy"`
	VisaStatus   *VisaStatus   `json:"visaStatus" validate:"omitempty,oneof=valid expired pending not_required"`
	Source       *ClientSource `json:"source" validate:"omitempty,oneof=referral website social_media direct"`
	ClientType   *ClientType   `json:"clientType" validate:"omitempty,oneof=buyer seller investor tenant landlord"`
	Notes        *string       `json:"notes"`
	Company      *string       `json:"company"`
	Status       *ClientStatus `json:"status" validate:"omitempty,oneof=active inactive prospect"`
	CustomFields *string       `json:"customFields"`
}

// UpdateClient is the partial insert shape: every field optional, absent
// fields keep their stored value while explicit nulls clear the nullable
// ones.
type UpdateClient struct {
	Name         *string       `json:"name"`
	Nationality  *string       `json:"nationality"`
	Phone        *string       `json:"phone"`
	Email        *string       `json:"email" validate:"omitempty,email"`
	PassportCopy *string       `json:"passportCopy"`
	EmiratesID   *string       `json:"emiratesId"`
	VisaCopy     *string       `json:"visaCopy"`
	VisaStatus   *VisaStatus   `json:"visaStatus" validate:"omitempty,oneof=valid expired pending not_required"`
	Source       *ClientSource `json:"source" validate:"omitempty,oneof=referral website social_media direct"`
	ClientType   *ClientType   `json:"clientType" validate:"omitempty,oneof=buyer seller investor tenant landlord"`
	Notes        *string       `json:"notes"`
	Company      *string       `json:"company"`
	Status       *ClientStatus `json:"status" validate:"omitempty,oneof=active inactive prospect"`
	CustomFields *string       `json:"customFields"`

	provided map[string]bool
}

package model

import "time"

// Property Types
type PropertyType string

const (
	PropertyTypeResidential PropertyType = "residential"
	PropertyTypeCommercial  PropertyType = "commercial"
	PropertyTypeIndustrial  PropertyType = "industrial"
)

// Property Status
type PropertyStatus string

const (
	PropertyStatusListed  PropertyStatus = "listed"
	PropertyStatusPending PropertyStatus = "pending"
	PropertyStatusSold    PropertyStatus = "sold"
)

type Property struct {
	ID           int            `json:"id"`
	Title        string         `json:"title"`
	Slug         string         `json:"slug"`
	Address      string         `json:"address"`
	Price        string         `json:"price"` // decimal kept as string to preserve precision
	Bedrooms     *int           `json:"bedrooms"`
	Bathrooms    *int           `json:"bathrooms"`
	PropertyType PropertyType   `json:"propertyType"`
	Status       PropertyStatus `json:"status"`
	ClientID     *int           `json:"clientId"` // non-owning, may dangle after client delete
	Description  *string        `json:"description"`
	ImageURL     *string        `json:"imageUrl"`
	CreatedAt    time.Time      `json:"createdAt"`
}

type InsertProperty struct {
	Title        string          `json:"title" validate:"required"`
	Address      string          `json:"address" validate:"required"`
	Price        string          `json:"price" validate:"required,numeric"`
	Bedrooms     *int            `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms    *int            `json:"bathrooms" validate:"omitempty,min=0"`
	PropertyType PropertyType    `json:"propertyType" validate:"required,oneof=residential commercial industrial"`
	Status       *PropertyStatus `json:"status" validate:"omitempty,oneof=listed pending sold"`
	ClientID     *int            `json:"clientId"`
	Description  *string         `json:"description"`
	ImageURL     *string         `json:"imageUrl"`
}

type UpdateProperty struct {
	Title        *string         `json:"title"`
	Address      *string         `json:"address"`
	Price        *string         `json:"price" validate:"omitempty,numeric"`
	Bedrooms     *int            `json:"bedrooms" validate:"omitempty,min=0"`
	Bathrooms    *int            `json:"bathrooms" validate:"omitempty,min=0"`
	PropertyType *PropertyType   `json:"propertyType" validate:"omitempty,oneof=residential commercial industrial"`
	Status       *PropertyStatus `json:"status" validate:"omitempty,oneof=listed pending sold"`
	ClientID     *int            `json:"clientId"`
	Description  *string         `json:"description"`
	ImageURL     *string         `json:"imageUrl"`

	provided map[string]bool
}

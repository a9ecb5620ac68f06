package model

import "time"

// Field Types
type FieldType string

const (
	FieldTypeText    FieldType = "text"
	FieldTypeNumber  FieldType = "number"
	FieldTypeDate    FieldType = "date"
	FieldTypeSelect  FieldType = "select"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeFile    FieldType = "file"
)

// Entity kinds a custom field can augment
type EntityType string

const (
	EntityTypeClient   EntityType = "client"
	EntityTypeProperty EntityType = "property"
	EntityTypeMeeting  EntityType = "meeting"
)

// CustomField describes a user-defined extra attribute for one entity kind.
// It is rendering metadata: records are not validated against it.
type CustomField struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Label      string     `json:"label"`
	Type       FieldType  `json:"type"`
	Options    []string   `json:"options"` // only meaningful when type=select
	Required   bool       `json:"required"`
	EntityType EntityType `json:"entityType"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type InsertCustomField struct {
	Name       string     `json:"name" validate:"required"`
	Label      string     `json:"label" validate:"required"`
	Type       FieldType  `json:"type" validate:"required,oneof=text number date select boolean file"`
	Options    []string   `json:"options" validate:"required_if=Type select,omitempty,min=1,dive,required"`
	Required   *bool      `json:"required"`
	EntityType EntityType `json:"entityType" validate:"required,oneof=client property meeting"`
}

type UpdateCustomField struct {
	Name       *string     `json:"name"`
	Label      *string     `json:"label"`
	Type       *FieldType  `json:"type" validate:"omitempty,oneof=text number date select boolean file"`
	Options    []string    `json:"options" validate:"omitempty,min=1,dive,required"`
	Required   *bool       `json:"required"`
	EntityType *EntityType `json:"entityType" validate:"omitempty,oneof=client property meeting"`

	provided map[string]bool
}

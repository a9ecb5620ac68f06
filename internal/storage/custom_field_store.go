package storage

import (
	"sort"

	"estatedesk_backend/internal/model"
)

func (s *Store) CreateCustomField(in model.InsertCustomField) model.CustomField {
	s.mu.Lock()
	defer s.mu.Unlock()

	required := false
	if in.Required != nil {
		required = *in.Required
	}

	id := s.nextCustomFieldID
	s.nextCustomFieldID++

	field := model.CustomField{
		ID:         id,
		Name:       in.Name,
		Label:      in.Label,
		Type:       in.Type,
		Options:    in.Options,
		Required:   required,
		EntityType: in.EntityType,
		CreatedAt:  s.now(),
	}
	s.customFields[id] = field
	return field
}

func (s *Store) GetCustomField(id int) (model.CustomField, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	field, ok := s.customFields[id]
	return field, ok
}

// CustomFieldsByEntityType returns the field definitions scoped to one
// entity kind, oldest-defined-first so rendered forms keep a stable order.
func (s *Store) CustomFieldsByEntityType(entityType model.EntityType) []model.CustomField {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.CustomField, 0)
	for _, field := range s.customFields {
		if field.EntityType == entityType {
			out = append(out, field)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateCustomField overlays the provided fields onto the stored record.
// The merged result still has to satisfy the select invariant: when it ends
// up a select field with no options, the update is rejected with
// ErrOptionsRequired and the stored record is untouched.
func (s *Store) UpdateCustomField(id int, in model.UpdateCustomField) (model.CustomField, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	field, ok := s.customFields[id]
	if !ok {
		return model.CustomField{}, false, nil
	}

	if in.Name != nil {
		field.Name = *in.Name
	}
	if in.Label != nil {
		field.Label = *in.Label
	}
	if in.Type != nil {
		field.Type = *in.Type
	}
	if in.Provided("options") || in.Options != nil {
		field.Options = in.Options
	}
	if in.Required != nil {
		field.Required = *in.Required
	}
	if in.EntityType != nil {
		field.EntityType = *in.EntityType
	}

	if field.Type == model.FieldTypeSelect && len(field.Options) == 0 {
		return model.CustomField{}, true, ErrOptionsRequired
	}

	s.customFields[id] = field
	return field, true, nil
}

func (s *Store) DeleteCustomField(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customFields[id]; !ok {
		return false
	}
	delete(s.customFields, id)
	return true
}

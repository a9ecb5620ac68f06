package storage

import (
	"fmt"
	"sort"

	"github.com/gosimple/slug"

	"estatedesk_backend/internal/model"
)

// CreateProperty assigns the next property id, applies defaults, derives a
// URL-friendly slug from the title and stores the record. When another
// property already carries the same slug, a numeric suffix starting at the
// new id is bumped until the slug is unique.
func (s *Store) CreateProperty(in model.InsertProperty) model.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := model.PropertyStatusListed
	if in.Status != nil {
		status = *in.Status
	}

	id := s.nextPropertyID
	s.nextPropertyID++

	base := slug.Make(in.Title)
	propertySlug := base
	for suffix := id; s.slugTaken(propertySlug); suffix++ {
		propertySlug = fmt.Sprintf("%s-%d", base, suffix)
	}

	property := model.Property{
		ID:           id,
		Title:        in.Title,
		Slug:         propertySlug,
		Address:      in.Address,
		Price:        in.Price,
		Bedrooms:     in.Bedrooms,
		Bathrooms:    in.Bathrooms,
		PropertyType: in.PropertyType,
		Status:       status,
		ClientID:     in.ClientID,
		Description:  in.Description,
		ImageURL:     in.ImageURL,
		CreatedAt:    s.now(),
	}
	s.properties[id] = property
	return property
}

// slugTaken is called with the write lock held.
func (s *Store) slugTaken(propertySlug string) bool {
	for _, existing := range s.properties {
		if existing.Slug == propertySlug {
			return true
		}
	}
	return false
}

func (s *Store) GetProperty(id int) (model.Property, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	property, ok := s.properties[id]
	return property, ok
}

// Properties returns all properties newest-created-first.
func (s *Store) Properties() []model.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Property, 0, len(s.properties))
	for _, property := range s.properties {
		out = append(out, property)
	}
	sortPropertiesNewestFirst(out)
	return out
}

// PropertiesByClient returns the properties whose client reference equals
// the given id, in the base list order.
func (s *Store) PropertiesByClient(clientID int) []model.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Property, 0)
	for _, property := range s.properties {
		if property.ClientID != nil && *property.ClientID == clientID {
			out = append(out, property)
		}
	}
	sortPropertiesNewestFirst(out)
	return out
}

func sortPropertiesNewestFirst(properties []model.Property) {
	sort.Slice(properties, func(i, j int) bool {
		if properties[i].CreatedAt.Equal(properties[j].CreatedAt) {
			return properties[i].ID > properties[j].ID
		}
		return properties[i].CreatedAt.After(properties[j].CreatedAt)
	})
}

// UpdateProperty overlays the provided fields onto the stored record. An
// explicit null clears a nullable field; the slug is never rewritten.
func (s *Store) UpdateProperty(id int, in model.UpdateProperty) (model.Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	property, ok := s.properties[id]
	if !ok {
		return model.Property{}, false
	}

	if in.Title != nil {
		property.Title = *in.Title
	}
	if in.Address != nil {
		property.Address = *in.Address
	}
	if in.Price != nil {
		property.Price = *in.Price
	}
	if in.Provided("bedrooms") || in.Bedrooms != nil {
		property.Bedrooms = in.Bedrooms
	}
	if in.Provided("bathrooms") || in.Bathrooms != nil {
		property.Bathrooms = in.Bathrooms
	}
	if in.PropertyType != nil {
		property.PropertyType = *in.PropertyType
	}
	if in.Status != nil {
		property.Status = *in.Status
	}
	if in.Provided("clientId") || in.ClientID != nil {
		property.ClientID = in.ClientID
	}
	if in.Provided("description") || in.Description != nil {
		property.Description = in.Description
	}
	if in.Provided("imageUrl") || in.ImageURL != nil {
		property.ImageURL = in.ImageURL
	}

	s.properties[id] = property
	return property, true
}

func (s *Store) DeleteProperty(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.properties[id]; !ok {
		return false
	}
	delete(s.properties, id)
	return true
}

package storage

import (
	"sort"

	"estatedesk_backend/internal/model"
)

// CreateClient assigns the next client id, applies defaults for omitted
// optional fields, stamps createdAt and stores the record. A duplicate
// email is rejected with ErrEmailExists.
func (s *Store) CreateClient(in model.InsertClient) (model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.clients {
		if existing.Email == in.Email {
			return model.Client{}, ErrEmailExists
		}
	}

	status := model.ClientStatusActive
	if in.Status != nil {
		status = *in.Status
	}

	id := s.nextClientID
	s.nextClientID++

	client := model.Client{
		ID:           id,
		Name:         in.Name,
		Nationality:  in.Nationality,
		Phone:        in.Phone,
		Email:        in.Email,
		PassportCopy: in.PassportCopy,
		EmiratesID:   in.EmiratesID,
		VisaCopy:     in.VisaCopy,
		VisaStatus:   in.VisaStatus,
		Source:       in.Source,
		ClientType:   in.ClientType,
		Notes:        in.Notes,
		Company:      in.Company,
		Status:       status,
		CustomFields: in.CustomFields,
		CreatedAt:    s.now(),
	}
	s.clients[id] = client
	return client, nil
}

func (s *Store) GetClient(id int) (model.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	client, ok := s.clients[id]
	return client, ok
}

// Clients returns all clients newest-created-first.
func (s *Store) Clients() []model.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Client, 0, len(s.clients))
	for _, client := range s.clients {
		out = append(out, client)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// UpdateClient overlays the provided fields onto the stored record. The id
// and createdAt never change. An explicit null clears a nullable field;
// required fields only change when a value is given. Changing the email to
// one held by another client is rejected with ErrEmailExists.
func (s *Store) UpdateClient(id int, in model.UpdateClient) (model.Client, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, ok := s.clients[id]
	if !ok {
		return model.Client{}, false, nil
	}

	if in.Email != nil && *in.Email != client.Email {
		for otherID, other := range s.clients {
			if otherID != id && other.Email == *in.Email {
				return model.Client{}, true, ErrEmailExists
			}
		}
	}

	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.Provided("nationality") || in.Nationality != nil {
		client.Nationality = in.Nationality
	}
	if in.Provided("phone") || in.Phone != nil {
		client.Phone = in.Phone
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Provided("passportCopy") || in.PassportCopy != nil {
		client.PassportCopy = in.PassportCopy
	}
	if in.Provided("emiratesId") || in.EmiratesID != nil {
		client.EmiratesID = in.EmiratesID
	}
	if in.Provided("visaCopy") || in.VisaCopy != nil {
		client.VisaCopy = in.VisaCopy
	}
	if in.Provided("visaStatus") || in.VisaStatus != nil {
		client.VisaStatus = in.VisaStatus
	}
	if in.Provided("source") || in.Source != nil {
		client.Source = in.Source
	}
	if in.Provided("clientType") || in.ClientType != nil {
		client.ClientType = in.ClientType
	}
	if in.Provided("notes") || in.Notes != nil {
		client.Notes = in.Notes
	}
	if in.Provided("company") || in.Company != nil {
		client.Company = in.Company
	}
	if in.Status != nil {
		client.Status = *in.Status
	}
	if in.Provided("customFields") || in.CustomFields != nil {
		client.CustomFields = in.CustomFields
	}

	s.clients[id] = client
	return client, true, nil
}

// DeleteClient removes the client if present. Deleting is idempotent: a
// second call reports false. Properties and meetings referencing the client
// are not cascaded; their client references are left dangling.
func (s *Store) DeleteClient(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[id]; !ok {
		return false
	}
	delete(s.clients, id)
	return true
}

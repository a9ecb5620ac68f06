package storage

import (
	"sort"
	"time"

	"estatedesk_backend/internal/model"
)

const defaultMeetingDuration = 60 // minutes

func (s *Store) CreateMeeting(in model.InsertMeeting) model.Meeting {
	s.mu.Lock()
	defer s.mu.Unlock()

	meetingType := model.MeetingTypePropertyViewing
	if in.Type != nil {
		meetingType = *in.Type
	}
	status := model.MeetingStatusScheduled
	if in.Status != nil {
		status = *in.Status
	}
	duration := in.Duration
	if duration == nil {
		d := defaultMeetingDuration
		duration = &d
	}

	id := s.nextMeetingID
	s.nextMeetingID++

	meeting := model.Meeting{
		ID:                  id,
		Title:               in.Title,
		Description:         in.Description,
		ClientID:            in.ClientID,
		PropertyID:          in.PropertyID,
		ScheduledAt:         in.ScheduledAt,
		Duration:            duration,
		Location:            in.Location,
		Type:                meetingType,
		Status:              status,
		ExternalClientName:  in.ExternalClientName,
		ExternalClientEmail: in.ExternalClientEmail,
		ExternalClientPhone: in.ExternalClientPhone,
		CreatedAt:           s.now(),
	}
	s.meetings[id] = meeting
	return meeting
}

func (s *Store) GetMeeting(id int) (model.Meeting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	meeting, ok := s.meetings[id]
	return meeting, ok
}

// Meetings returns all meetings soonest-first. Scheduling screens want a
// chronological view, unlike the recent-first record lists.
func (s *Store) Meetings() []model.Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Meeting, 0, len(s.meetings))
	for _, meeting := range s.meetings {
		out = append(out, meeting)
	}
	sortMeetingsSoonestFirst(out)
	return out
}

func (s *Store) MeetingsByClient(clientID int) []model.Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Meeting, 0)
	for _, meeting := range s.meetings {
		if meeting.ClientID != nil && *meeting.ClientID == clientID {
			out = append(out, meeting)
		}
	}
	sortMeetingsSoonestFirst(out)
	return out
}

// MeetingsByDateRange returns meetings whose scheduledAt falls within
// [start, end], inclusive on both ends.
func (s *Store) MeetingsByDateRange(start, end time.Time) []model.Meeting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Meeting, 0)
	for _, meeting := range s.meetings {
		if meeting.ScheduledAt.Before(start) || meeting.ScheduledAt.After(end) {
			continue
		}
		out = append(out, meeting)
	}
	sortMeetingsSoonestFirst(out)
	return out
}

func sortMeetingsSoonestFirst(meetings []model.Meeting) {
	sort.Slice(meetings, func(i, j int) bool {
		if meetings[i].ScheduledAt.Equal(meetings[j].ScheduledAt) {
			return meetings[i].ID < meetings[j].ID
		}
		return meetings[i].ScheduledAt.Before(meetings[j].ScheduledAt)
	})
}

func (s *Store) UpdateMeeting(id int, in model.UpdateMeeting) (model.Meeting, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	meeting, ok := s.meetings[id]
	if !ok {
		return model.Meeting{}, false
	}

	if in.Title != nil {
		meeting.Title = *in.Title
	}
	if in.Provided("description") || in.Description != nil {
		meeting.Description = in.Description
	}
	if in.Provided("clientId") || in.ClientID != nil {
		meeting.ClientID = in.ClientID
	}
	if in.Provided("propertyId") || in.PropertyID != nil {
		meeting.PropertyID = in.PropertyID
	}
	if in.ScheduledAt != nil {
		meeting.ScheduledAt = *in.ScheduledAt
	}
	if in.Provided("duration") || in.Duration != nil {
		meeting.Duration = in.Duration
	}
	if in.Provided("location") || in.Location != nil {
		meeting.Location = in.Location
	}
	if in.Type != nil {
		meeting.Type = *in.Type
	}
	if in.Status != nil {
		meeting.Status = *in.Status
	}
	if in.Provided("externalClientName") || in.ExternalClientName != nil {
		meeting.ExternalClientName = in.ExternalClientName
	}
	if in.Provided("externalClientEmail") || in.ExternalClientEmail != nil {
		meeting.ExternalClientEmail = in.ExternalClientEmail
	}
	if in.Provided("externalClientPhone") || in.ExternalClientPhone != nil {
		meeting.ExternalClientPhone = in.ExternalClientPhone
	}

	s.meetings[id] = meeting
	return meeting, true
}

func (s *Store) DeleteMeeting(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.meetings[id]; !ok {
		return false
	}
	delete(s.meetings, id)
	return true
}

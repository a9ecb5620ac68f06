// Package storage is the sole owner of all entity data. It is an explicitly
// volatile store: per-entity maps guarded by one mutex, with per-entity id
// counters that start at 1 and are never reused, not even after deletes.
// Nothing survives a process restart.
package storage

import (
	"errors"
	"sync"
	"time"

	"estatedesk_backend/internal/model"
)

var (
	ErrEmailExists     = errors.New("client email already exists")
	ErrUsernameExists  = errors.New("username already exists")
	ErrOptionsRequired = errors.New("select fields require at least one option")
)

type Store struct {
	mu sync.RWMutex

	users        map[int]model.User
	clients      map[int]model.Client
	properties   map[int]model.Property
	meetings     map[int]model.Meeting
	customFields map[int]model.CustomField

	nextUserID        int
	nextClientID      int
	nextPropertyID    int
	nextMeetingID     int
	nextCustomFieldID int
}

func New() *Store {
	return &Store{
		users:             make(map[int]model.User),
		clients:           make(map[int]model.Client),
		properties:        make(map[int]model.Property),
		meetings:          make(map[int]model.Meeting),
		customFields:      make(map[int]model.CustomField),
		nextUserID:        1,
		nextClientID:      1,
		nextPropertyID:    1,
		nextMeetingID:     1,
		nextCustomFieldID: 1,
	}
}

func (s *Store) now() time.Time {
	return time.Now().UTC()
}

package storage

import "estatedesk_backend/internal/model"

// CreateUser stores a user with the given (already hashed) password. A
// duplicate username is rejected with ErrUsernameExists.
func (s *Store) CreateUser(username, password string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == username {
			return model.User{}, ErrUsernameExists
		}
	}

	id := s.nextUserID
	s.nextUserID++

	user := model.User{
		ID:       id,
		Username: username,
		Password: password,
	}
	s.users[id] = user
	return user, nil
}

func (s *Store) GetUser(id int) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	return user, ok
}

func (s *Store) GetUserByUsername(username string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, true
		}
	}
	return model.User{}, false
}

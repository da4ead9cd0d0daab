package store

import "anoa.com/ruangkelas/internal/model"

// Login matches username and password against the user collection,
// case-sensitive and in plaintext. On success the matched user becomes the
// current session; on failure the session is left untouched.
func (s *Store) Login(username, password string) (model.User, bool) {
	s.mu.Lock()
	var found *model.User
	for i := range s.users {
		if s.users[i].Username == username && s.users[i].Password == password {
			found = &s.users[i]
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		s.notifier.Error("Username atau password salah")
		return model.User{}, false
	}
	u := *found
	s.currentUser = &u
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColSession, Op: OpLogin})
	s.notifier.Success("Login berhasil")
	return u, true
}

// Logout clears the current session unconditionally.
func (s *Store) Logout() {
	s.mu.Lock()
	s.currentUser = nil
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColSession, Op: OpLogout})
	s.notifier.Success("Logout berhasil")
}

// CurrentUser returns the signed-in user, if any. This is the query surface
// route guards use to decide between redirecting and serving.
func (s *Store) CurrentUser() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentUser == nil {
		return model.User{}, false
	}
	return *s.currentUser, true
}

// Users returns a copy of the user collection.
func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

// UserByID looks a user up by id.
func (s *Store) UserByID(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i], true
		}
	}
	return model.User{}, false
}

package store

import (
	"slices"
	"time"

	"anoa.com/ruangkelas/internal/model"
)

// Announcements returns a copy of the announcement collection.
func (s *Store) Announcements() []model.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.announcements)
}

// AnnouncementByID looks an announcement up by id.
func (s *Store) AnnouncementByID(id string) (model.Announcement, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.announcements {
		if s.announcements[i].ID == id {
			return s.announcements[i], true
		}
	}
	return model.Announcement{}, false
}

// AddAnnouncement assigns a fresh id and appends the announcement. A missing
// date defaults to now. ClassID nil means the announcement broadcasts to
// every class.
func (s *Store) AddAnnouncement(a model.Announcement) model.Announcement {
	a.ID = newID()
	if a.Date == "" {
		a.Date = time.Now().Format(time.RFC3339)
	}

	s.mu.Lock()
	s.announcements = append(s.announcements, a)
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColAnnouncements, Op: OpAdd})
	s.notifier.Success("Pengumuman berhasil ditambahkan")
	return a
}

// UpdateAnnouncement merges the patch into the announcement with the given
// id. An unknown id is a silent no-op.
func (s *Store) UpdateAnnouncement(id string, patch model.AnnouncementPatch) {
	s.mu.Lock()
	for i := range s.announcements {
		if s.announcements[i].ID != id {
			continue
		}
		if patch.Title != nil {
			s.announcements[i].Title = *patch.Title
		}
		if patch.Content != nil {
			s.announcements[i].Content = *patch.Content
		}
		if patch.Date != nil {
			s.announcements[i].Date = *patch.Date
		}
		if patch.ClassID != nil {
			s.announcements[i].ClassID = *patch.ClassID
		}
		if patch.Attachments != nil {
			s.announcements[i].Attachments = *patch.Attachments
		}
		break
	}
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColAnnouncements, Op: OpUpdate})
	s.notifier.Success("Pengumuman berhasil diperbarui")
}

// RemoveAnnouncement deletes the announcement with the given id.
func (s *Store) RemoveAnnouncement(id string) {
	s.mu.Lock()
	s.announcements = slices.DeleteFunc(s.announcements, func(a model.Announcement) bool {
		return a.ID == id
	})
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColAnnouncements, Op: OpRemove})
	s.notifier.Success("Pengumuman berhasil dihapus")
}

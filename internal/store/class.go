package store

import (
	"slices"

	"anoa.com/ruangkelas/internal/model"
	"anoa.com/ruangkelas/pkg/apperror"
)

// Classes returns a copy of the class collection.
func (s *Store) Classes() []model.Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.classes)
}

// ClassByID looks a class up by id.
func (s *Store) ClassByID(id string) (model.Class, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.classes {
		if s.classes[i].ID == id {
			return s.classes[i], true
		}
	}
	return model.Class{}, false
}

// AddClass assigns a fresh id and appends the class.
func (s *Store) AddClass(c model.Class) model.Class {
	c.ID = newID()
	if c.Students == nil {
		c.Students = []string{}
	}

	s.mu.Lock()
	s.classes = append(s.classes, c)
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColClasses, Op: OpAdd})
	s.notifier.Success("Kelas berhasil ditambahkan")
	return c
}

// UpdateClass merges the patch into the class with the given id. An unknown
// id is a silent no-op; membership is never edited here, only through
// Enroll and Withdraw.
func (s *Store) UpdateClass(id string, patch model.ClassPatch) {
	s.mu.Lock()
	for i := range s.classes {
		if s.classes[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.classes[i].Name = *patch.Name
		}
		if patch.Description != nil {
			s.classes[i].Description = *patch.Description
		}
		if patch.TeacherID != nil {
			s.classes[i].TeacherID = *patch.TeacherID
		}
		break
	}
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColClasses, Op: OpUpdate})
	s.notifier.Success("Kelas berhasil diperbarui")
}

// RemoveClass deletes the class and runs its cascade: the class id is
// stripped from every student, and all scores and announcements scoped to
// the class are deleted. Attendance records for the class are retained.
func (s *Store) RemoveClass(id string) {
	s.mu.Lock()
	s.classes = slices.DeleteFunc(s.classes, func(c model.Class) bool {
		return c.ID == id
	})
	for i := range s.students {
		s.students[i].ClassIDs = slices.DeleteFunc(s.students[i].ClassIDs, func(cID string) bool {
			return cID == id
		})
	}
	s.scores = slices.DeleteFunc(s.scores, func(sc model.Score) bool {
		return sc.ClassID == id
	})
	s.announcements = slices.DeleteFunc(s.announcements, func(a model.Announcement) bool {
		return a.ClassID != nil && *a.ClassID == id
	})
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColClasses, Op: OpRemove})
	s.notifier.Success("Kelas berhasil dihapus")
}

// Enroll adds a student to a class, updating both sides of the relation in
// one state transition. Enrolling an already enrolled student is a no-op.
func (s *Store) Enroll(classID, studentID string) error {
	s.mu.Lock()
	ci := slices.IndexFunc(s.classes, func(c model.Class) bool { return c.ID == classID })
	si := slices.IndexFunc(s.students, func(st model.Student) bool { return st.ID == studentID })
	if ci < 0 || si < 0 {
		s.mu.Unlock()
		return apperror.ErrNotFound
	}
	if !slices.Contains(s.classes[ci].Students, studentID) {
		s.classes[ci].Students = append(s.classes[ci].Students, studentID)
	}
	if !slices.Contains(s.students[si].ClassIDs, classID) {
		s.students[si].ClassIDs = append(s.students[si].ClassIDs, classID)
	}
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColClasses, Op: OpEnroll})
	s.notifier.Success("Siswa berhasil didaftarkan ke kelas")
	return nil
}

// Withdraw removes a student from a class, updating both sides of the
// relation in one state transition.
func (s *Store) Withdraw(classID, studentID string) error {
	s.mu.Lock()
	ci := slices.IndexFunc(s.classes, func(c model.Class) bool { return c.ID == classID })
	si := slices.IndexFunc(s.students, func(st model.Student) bool { return st.ID == studentID })
	if ci < 0 || si < 0 {
		s.mu.Unlock()
		return apperror.ErrNotFound
	}
	s.classes[ci].Students = slices.DeleteFunc(s.classes[ci].Students, func(id string) bool {
		return id == studentID
	})
	s.students[si].ClassIDs = slices.DeleteFunc(s.students[si].ClassIDs, func(id string) bool {
		return id == classID
	})
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColClasses, Op: OpEnroll})
	s.notifier.Success("Siswa berhasil dikeluarkan dari kelas")
	return nil
}

package store

import (
	"fmt"
	"slices"

	"anoa.com/ruangkelas/internal/model"
)

// Students returns a copy of the student collection.
func (s *Store) Students() []model.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.students)
}

// StudentByID looks a student up by id.
func (s *Store) StudentByID(id string) (model.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.students {
		if s.students[i].ID == id {
			return s.students[i], true
		}
	}
	return model.Student{}, false
}

func shadowUser(st model.Student) model.User {
	return model.User{
		ID:       st.ID,
		Username: st.Username,
		Password: st.Password,
		Name:     st.Name,
		Role:     model.RoleStudent,
	}
}

// AddStudent appends the student and, in the same transition, its shadow
// User so the student can sign in. Both records share one id.
func (s *Store) AddStudent(st model.Student) model.Student {
	st.ID = newID()
	if st.ClassIDs == nil {
		st.ClassIDs = []string{}
	}

	s.mu.Lock()
	s.students = append(s.students, st)
	s.users = append(s.users, shadowUser(st))
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColStudents, Op: OpAdd})
	s.notifier.Success("Siswa berhasil ditambahkan")
	return st
}

// AddStudents inserts a whole batch of students, and their shadow users, in
// a single state transition. An empty batch is a strict no-op: no event, no
// notification.
func (s *Store) AddStudents(batch []model.Student) []model.Student {
	if len(batch) == 0 {
		return nil
	}

	added := make([]model.Student, 0, len(batch))
	users := make([]model.User, 0, len(batch))
	for _, st := range batch {
		st.ID = newID()
		if st.ClassIDs == nil {
			st.ClassIDs = []string{}
		}
		added = append(added, st)
		users = append(users, shadowUser(st))
	}

	s.mu.Lock()
	s.students = append(s.students, added...)
	s.users = append(s.users, users...)
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColStudents, Op: OpAdd})
	s.notifier.Success(fmt.Sprintf("%d siswa berhasil ditambahkan", len(added)))
	return added
}

// UpdateStudent merges the patch into the student with the given id and
// keeps the shadow User's name, username and password in step. An unknown
// id is a silent no-op.
func (s *Store) UpdateStudent(id string, patch model.StudentPatch) {
	s.mu.Lock()
	for i := range s.students {
		if s.students[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.students[i].Name = *patch.Name
		}
		if patch.Username != nil {
			s.students[i].Username = *patch.Username
		}
		if patch.Password != nil {
			s.students[i].Password = *patch.Password
		}
		for j := range s.users {
			if s.users[j].ID != id {
				continue
			}
			if patch.Name != nil {
				s.users[j].Name = *patch.Name
			}
			if patch.Username != nil {
				s.users[j].Username = *patch.Username
			}
			if patch.Password != nil {
				s.users[j].Password = *patch.Password
			}
			break
		}
		break
	}
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColStudents, Op: OpUpdate})
	s.notifier.Success("Siswa berhasil diperbarui")
}

// RemoveStudent deletes the student and runs its cascade: the student id is
// stripped from every class, the student's scores are deleted, and the
// shadow User goes with it. Attendance records are retained.
func (s *Store) RemoveStudent(id string) {
	s.mu.Lock()
	s.students = slices.DeleteFunc(s.students, func(st model.Student) bool {
		return st.ID == id
	})
	for i := range s.classes {
		s.classes[i].Students = slices.DeleteFunc(s.classes[i].Students, func(sID string) bool {
			return sID == id
		})
	}
	s.scores = slices.DeleteFunc(s.scores, func(sc model.Score) bool {
		return sc.StudentID == id
	})
	s.users = slices.DeleteFunc(s.users, func(u model.User) bool {
		return u.ID == id
	})
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColStudents, Op: OpRemove})
	s.notifier.Success("Siswa berhasil dihapus")
}

package store

import (
	"fmt"
	"slices"

	"anoa.com/ruangkelas/internal/model"
)

// Attendance returns a copy of the attendance collection.
func (s *Store) Attendance() []model.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.attendance)
}

// AttendanceByID looks an attendance record up by id.
func (s *Store) AttendanceByID(id string) (model.AttendanceRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.attendance {
		if s.attendance[i].ID == id {
			return s.attendance[i], true
		}
	}
	return model.AttendanceRecord{}, false
}

// AddAttendance assigns a fresh id and appends the record.
func (s *Store) AddAttendance(rec model.AttendanceRecord) model.AttendanceRecord {
	rec.ID = newID()

	s.mu.Lock()
	s.attendance = append(s.attendance, rec)
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColAttendance, Op: OpAdd})
	s.notifier.Success("Kehadiran berhasil ditambahkan")
	return rec
}

// AddAttendanceBatch inserts a whole batch of attendance records in a single
// state transition. An empty batch is a strict no-op.
func (s *Store) AddAttendanceBatch(batch []model.AttendanceRecord) []model.AttendanceRecord {
	if len(batch) == 0 {
		return nil
	}

	added := make([]model.AttendanceRecord, 0, len(batch))
	for _, rec := range batch {
		rec.ID = newID()
		added = append(added, rec)
	}

	s.mu.Lock()
	s.attendance = append(s.attendance, added...)
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColAttendance, Op: OpAdd})
	s.notifier.Success(fmt.Sprintf("%d data kehadiran berhasil ditambahkan", len(added)))
	return added
}

// UpdateAttendance merges the patch into the record with the given id. An
// unknown id is a silent no-op.
func (s *Store) UpdateAttendance(id string, patch model.AttendancePatch) {
	s.mu.Lock()
	for i := range s.attendance {
		if s.attendance[i].ID != id {
			continue
		}
		if patch.Date != nil {
			s.attendance[i].Date = *patch.Date
		}
		if patch.Status != nil {
			s.attendance[i].Status = *patch.Status
		}
		if patch.Note != nil {
			s.attendance[i].Note = patch.Note
		}
		break
	}
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColAttendance, Op: OpUpdate})
	s.notifier.Success("Kehadiran berhasil diperbarui")
}

// RemoveAttendance deletes the record with the given id.
func (s *Store) RemoveAttendance(id string) {
	s.mu.Lock()
	s.attendance = slices.DeleteFunc(s.attendance, func(a model.AttendanceRecord) bool {
		return a.ID == id
	})
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColAttendance, Op: OpRemove})
	s.notifier.Success("Kehadiran berhasil dihapus")
}

package store

import (
	"slices"
	"strings"
	"time"

	"anoa.com/ruangkelas/internal/model"
)

// Derived views over the collections. These are pure reads; none of them
// mutate state or emit events.

// StudentsInClass returns the students enrolled in the class, empty when the
// class is unknown.
func (s *Store) StudentsInClass(classID string) []model.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ci := slices.IndexFunc(s.classes, func(c model.Class) bool { return c.ID == classID })
	if ci < 0 {
		return nil
	}
	var out []model.Student
	for _, st := range s.students {
		if slices.Contains(s.classes[ci].Students, st.ID) {
			out = append(out, st)
		}
	}
	return out
}

// ClassesForStudent returns the classes the student is enrolled in, empty
// when the student is unknown.
func (s *Store) ClassesForStudent(studentID string) []model.Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	si := slices.IndexFunc(s.students, func(st model.Student) bool { return st.ID == studentID })
	if si < 0 {
		return nil
	}
	var out []model.Class
	for _, c := range s.classes {
		if slices.Contains(s.students[si].ClassIDs, c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// ScoresForStudent returns every score recorded for the student.
func (s *Store) ScoresForStudent(studentID string) []model.Score {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Score
	for _, sc := range s.scores {
		if sc.StudentID == studentID {
			out = append(out, sc)
		}
	}
	return out
}

// ScoresForClass returns every score recorded in the class.
func (s *Store) ScoresForClass(classID string) []model.Score {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Score
	for _, sc := range s.scores {
		if sc.ClassID == classID {
			out = append(out, sc)
		}
	}
	return out
}

// AnnouncementsForClass returns announcements addressed to the class plus
// every broadcast announcement (nil class id).
func (s *Store) AnnouncementsForClass(classID string) []model.Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Announcement
	for _, a := range s.announcements {
		if a.ClassID == nil || *a.ClassID == classID {
			out = append(out, a)
		}
	}
	return out
}

// dayPrefix reduces an ISO timestamp to its YYYY-MM-DD part.
func dayPrefix(date string) string {
	day, _, _ := strings.Cut(date, "T")
	return day
}

// AttendanceByDate returns records whose date falls on the same calendar day
// as the given ISO date string, ignoring time of day.
func (s *Store) AttendanceByDate(date string) []model.AttendanceRecord {
	prefix := dayPrefix(date)
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.AttendanceRecord
	for _, rec := range s.attendance {
		if strings.HasPrefix(rec.Date, prefix) {
			out = append(out, rec)
		}
	}
	return out
}

// AttendanceByClass returns every record for the class.
func (s *Store) AttendanceByClass(classID string) []model.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.AttendanceRecord
	for _, rec := range s.attendance {
		if rec.ClassID == classID {
			out = append(out, rec)
		}
	}
	return out
}

// AttendanceByStudent returns every record for the student.
func (s *Store) AttendanceByStudent(studentID string) []model.AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.AttendanceRecord
	for _, rec := range s.attendance {
		if rec.StudentID == studentID {
			out = append(out, rec)
		}
	}
	return out
}

// AttendanceByClassAndMonth returns the class's records whose calendar day
// falls within the given month. Month is 1-indexed. The comparison works on
// YYYY-MM-DD prefixes, which order correctly as plain strings.
func (s *Store) AttendanceByClassAndMonth(classID string, year, month int) []model.AttendanceRecord {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	start := first.Format("2006-01-02")
	end := last.Format("2006-01-02")

	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.AttendanceRecord
	for _, rec := range s.attendance {
		day := dayPrefix(rec.Date)
		if rec.ClassID == classID && day >= start && day <= end {
			out = append(out, rec)
		}
	}
	return out
}

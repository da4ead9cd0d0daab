package store

import (
	"fmt"
	"testing"

	"anoa.com/ruangkelas/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentsInClassUnknownClass(t *testing.T) {
	s := newTestStore()
	assert.Empty(t, s.StudentsInClass("missing"))
	assert.Empty(t, s.ClassesForStudent("missing"))
}

func TestStudentsInClassAndBack(t *testing.T) {
	s := newTestStore()
	cl := s.AddClass(model.Class{Name: "Kelas 7A", TeacherID: "teacher-1"})
	a := s.AddStudent(model.Student{Name: "A", Username: "a", Password: "pa"})
	b := s.AddStudent(model.Student{Name: "B", Username: "b", Password: "pb"})
	s.AddStudent(model.Student{Name: "C", Username: "c", Password: "pc"})
	require.NoError(t, s.Enroll(cl.ID, a.ID))
	require.NoError(t, s.Enroll(cl.ID, b.ID))

	roster := s.StudentsInClass(cl.ID)
	require.Len(t, roster, 2)

	classes := s.ClassesForStudent(a.ID)
	require.Len(t, classes, 1)
	assert.Equal(t, cl.ID, classes[0].ID)
}

func TestAnnouncementsForClassIncludesBroadcast(t *testing.T) {
	s := newTestStore()
	cl := s.AddClass(model.Class{Name: "Kelas 7A", TeacherID: "teacher-1"})
	other := s.AddClass(model.Class{Name: "Kelas 8B", TeacherID: "teacher-1"})

	s.AddAnnouncement(model.Announcement{Title: "Khusus 7A", Content: "x", TeacherID: "teacher-1", ClassID: &cl.ID})
	s.AddAnnouncement(model.Announcement{Title: "Khusus 8B", Content: "x", TeacherID: "teacher-1", ClassID: &other.ID})
	s.AddAnnouncement(model.Announcement{Title: "Untuk semua", Content: "x", TeacherID: "teacher-1"})

	got := s.AnnouncementsForClass(cl.ID)
	require.Len(t, got, 2)
	titles := []string{got[0].Title, got[1].Title}
	assert.Contains(t, titles, "Khusus 7A")
	assert.Contains(t, titles, "Untuk semua")
}

func TestAttendanceByDateIgnoresTimeOfDay(t *testing.T) {
	s := newTestStore()
	s.AddAttendance(model.AttendanceRecord{StudentID: "s1", ClassID: "c1", Date: "2024-03-05T07:15:00Z", Status: model.AttendancePresent})
	s.AddAttendance(model.AttendanceRecord{StudentID: "s2", ClassID: "c1", Date: "2024-03-05T13:40:00Z", Status: model.AttendanceSick})
	s.AddAttendance(model.AttendanceRecord{StudentID: "s1", ClassID: "c1", Date: "2024-03-06T07:15:00Z", Status: model.AttendancePresent})

	assert.Len(t, s.AttendanceByDate("2024-03-05T23:59:59Z"), 2)
	assert.Len(t, s.AttendanceByDate("2024-03-06"), 1)
	assert.Empty(t, s.AttendanceByDate("2024-03-07"))
}

func TestAttendanceByClassAndMonthBoundaries(t *testing.T) {
	s := newTestStore()
	add := func(day string) {
		s.AddAttendance(model.AttendanceRecord{
			StudentID: "s1",
			ClassID:   "c1",
			Date:      day + "T07:00:00Z",
			Status:    model.AttendancePresent,
		})
	}
	add("2023-12-31")
	add("2024-01-01")
	add("2024-01-31")
	add("2024-02-01")

	january := s.AttendanceByClassAndMonth("c1", 2024, 1)
	require.Len(t, january, 2)
	for _, rec := range january {
		assert.Contains(t, []string{"2024-01-01", "2024-01-31"}, rec.Date[:10])
	}

	// Leap-year February still ends on the right day.
	add("2024-02-29")
	february := s.AttendanceByClassAndMonth("c1", 2024, 2)
	assert.Len(t, february, 2)

	assert.Empty(t, s.AttendanceByClassAndMonth("lain", 2024, 1))
}

func TestAttendanceByClassAndMonthScopedToClass(t *testing.T) {
	s := newTestStore()
	for i, classID := range []string{"c1", "c2", "c1"} {
		s.AddAttendance(model.AttendanceRecord{
			StudentID: "s1",
			ClassID:   classID,
			Date:      fmt.Sprintf("2024-05-%02dT07:00:00Z", i+1),
			Status:    model.AttendancePresent,
		})
	}
	assert.Len(t, s.AttendanceByClassAndMonth("c1", 2024, 5), 2)
	assert.Len(t, s.AttendanceByClassAndMonth("c2", 2024, 5), 1)
}

func TestScoresQueriesFilter(t *testing.T) {
	s := newTestStore()
	s.AddScore(model.Score{StudentID: "s1", ClassID: "c1", Subject: "Matematika", Value: 80, Date: "2024-03-01T00:00:00Z"})
	s.AddScore(model.Score{StudentID: "s1", ClassID: "c2", Subject: "IPA", Value: 75, Date: "2024-03-02T00:00:00Z"})
	s.AddScore(model.Score{StudentID: "s2", ClassID: "c1", Subject: "Matematika", Value: 90, Date: "2024-03-01T00:00:00Z"})

	assert.Len(t, s.ScoresForStudent("s1"), 2)
	assert.Len(t, s.ScoresForClass("c1"), 2)
	assert.Empty(t, s.ScoresForStudent("s3"))
}

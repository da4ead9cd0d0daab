package store

import (
	"testing"

	"anoa.com/ruangkelas/internal/model"
	"anoa.com/ruangkelas/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type silentNotifier struct{}

func (silentNotifier) Success(string) {}
func (silentNotifier) Error(string)   {}

func newTestStore() *Store {
	return New(DefaultSnapshot(), WithNotifier(silentNotifier{}))
}

// assertSymmetry checks the dual-list invariant: a student id sits in a
// class's roster exactly when the class id sits in the student's class list.
func assertSymmetry(t *testing.T, s *Store) {
	t.Helper()
	classes := s.Classes()
	students := s.Students()

	for _, c := range classes {
		for _, sID := range c.Students {
			st, ok := s.StudentByID(sID)
			require.True(t, ok, "class %s references unknown student %s", c.ID, sID)
			assert.Contains(t, st.ClassIDs, c.ID)
		}
	}
	for _, st := range students {
		for _, cID := range st.ClassIDs {
			cl, ok := s.ClassByID(cID)
			require.True(t, ok, "student %s references unknown class %s", st.ID, cID)
			assert.Contains(t, cl.Students, st.ID)
		}
	}
}

func TestLoginContract(t *testing.T) {
	s := newTestStore()

	_, ok := s.CurrentUser()
	require.False(t, ok)

	user, ok := s.Login("teacher", "password")
	require.True(t, ok)
	assert.Equal(t, "teacher-1", user.ID)
	assert.Equal(t, model.RoleTeacher, user.Role)

	current, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user.ID, current.ID)
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	s := newTestStore()

	_, ok := s.Login("teacher", "wrong")
	require.False(t, ok)
	_, ok = s.CurrentUser()
	assert.False(t, ok)

	// A failed login must not evict an existing session either.
	_, ok = s.Login("teacher", "password")
	require.True(t, ok)
	_, ok = s.Login("teacher", "wrong")
	require.False(t, ok)
	current, ok := s.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "teacher-1", current.ID)
}

func TestLoginIsCaseSensitive(t *testing.T) {
	s := newTestStore()
	_, ok := s.Login("Teacher", "password")
	assert.False(t, ok)
	_, ok = s.Login("teacher", "Password")
	assert.False(t, ok)
}

func TestLogout(t *testing.T) {
	s := newTestStore()
	s.Login("teacher", "password")
	s.Logout()
	_, ok := s.CurrentUser()
	assert.False(t, ok)
}

func TestAddStudentCreatesShadowUser(t *testing.T) {
	s := newTestStore()

	st := s.AddStudent(model.Student{Name: "Siti Aminah", Username: "siti", Password: "siti123"})
	require.NotEmpty(t, st.ID)

	u, ok := s.UserByID(st.ID)
	require.True(t, ok)
	assert.Equal(t, model.RoleStudent, u.Role)
	assert.Equal(t, st.Name, u.Name)
	assert.Equal(t, st.Username, u.Username)
	assert.Equal(t, st.Password, u.Password)

	// The new student can sign in right away.
	logged, ok := s.Login("siti", "siti123")
	require.True(t, ok)
	assert.Equal(t, st.ID, logged.ID)
}

func TestUpdateStudentSyncsShadowUser(t *testing.T) {
	s := newTestStore()
	st := s.AddStudent(model.Student{Name: "Budi", Username: "budi", Password: "rahasia"})

	// Changing only some fields must leave the rest alone.
	newName := "Budi Santoso"
	newPass := "rahasia2"
	s.UpdateStudent(st.ID, model.StudentPatch{Name: &newName, Password: &newPass})

	updated, ok := s.StudentByID(st.ID)
	require.True(t, ok)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, "budi", updated.Username)

	u, ok := s.UserByID(st.ID)
	require.True(t, ok)
	assert.Equal(t, newName, u.Name)
	assert.Equal(t, "budi", u.Username)
	assert.Equal(t, newPass, u.Password)
}

func TestRemoveStudentCascade(t *testing.T) {
	s := newTestStore()
	cl := s.AddClass(model.Class{Name: "Kelas 7A", TeacherID: "teacher-1"})
	st := s.AddStudent(model.Student{Name: "Dewi", Username: "dewi", Password: "dewi789"})
	require.NoError(t, s.Enroll(cl.ID, st.ID))
	s.AddScore(model.Score{StudentID: st.ID, ClassID: cl.ID, Subject: "Matematika", Value: 85, Date: "2024-03-01T00:00:00Z"})
	s.AddAttendance(model.AttendanceRecord{StudentID: st.ID, ClassID: cl.ID, Date: "2024-03-01T07:00:00Z", Status: model.AttendancePresent})

	s.RemoveStudent(st.ID)

	_, ok := s.StudentByID(st.ID)
	assert.False(t, ok)
	_, ok = s.UserByID(st.ID)
	assert.False(t, ok, "shadow user must go with the student")
	assert.Empty(t, s.ScoresForStudent(st.ID))

	updatedClass, ok := s.ClassByID(cl.ID)
	require.True(t, ok)
	assert.NotContains(t, updatedClass.Students, st.ID)

	// Attendance history is retained.
	assert.Len(t, s.AttendanceByStudent(st.ID), 1)
	assertSymmetry(t, s)
}

func TestRemoveClassCascade(t *testing.T) {
	s := newTestStore()
	cl := s.AddClass(model.Class{Name: "Kelas 8B", TeacherID: "teacher-1"})
	other := s.AddClass(model.Class{Name: "Kelas 9C", TeacherID: "teacher-1"})
	st := s.AddStudent(model.Student{Name: "Joko", Username: "joko", Password: "joko123"})
	require.NoError(t, s.Enroll(cl.ID, st.ID))
	require.NoError(t, s.Enroll(other.ID, st.ID))

	s.AddScore(model.Score{StudentID: st.ID, ClassID: cl.ID, Subject: "IPA", Value: 90, Date: "2024-03-01T00:00:00Z"})
	s.AddScore(model.Score{StudentID: st.ID, ClassID: other.ID, Subject: "IPA", Value: 70, Date: "2024-03-01T00:00:00Z"})
	s.AddAnnouncement(model.Announcement{Title: "Ujian", Content: "Ujian IPA", TeacherID: "teacher-1", ClassID: &cl.ID})
	s.AddAnnouncement(model.Announcement{Title: "Libur", Content: "Libur nasional", TeacherID: "teacher-1", ClassID: nil})
	s.AddAttendance(model.AttendanceRecord{StudentID: st.ID, ClassID: cl.ID, Date: "2024-03-01T07:00:00Z", Status: model.AttendanceSick})

	s.RemoveClass(cl.ID)

	_, ok := s.ClassByID(cl.ID)
	assert.False(t, ok)

	updatedStudent, ok := s.StudentByID(st.ID)
	require.True(t, ok)
	assert.NotContains(t, updatedStudent.ClassIDs, cl.ID)
	assert.Contains(t, updatedStudent.ClassIDs, other.ID)

	assert.Empty(t, s.ScoresForClass(cl.ID), "scores scoped to the class are deleted")
	assert.Len(t, s.ScoresForClass(other.ID), 1)

	for _, a := range s.Announcements() {
		if a.ClassID != nil {
			assert.NotEqual(t, cl.ID, *a.ClassID)
		}
	}
	// The broadcast announcement survives.
	assert.Len(t, s.Announcements(), 1)

	// Attendance history is retained.
	assert.Len(t, s.AttendanceByClass(cl.ID), 1)
	assertSymmetry(t, s)
}

func TestEnrollWithdrawSymmetry(t *testing.T) {
	s := newTestStore()
	cl := s.AddClass(model.Class{Name: "Kelas 7A", TeacherID: "teacher-1"})
	st := s.AddStudent(model.Student{Name: "Rina", Username: "rina", Password: "rina123"})

	require.NoError(t, s.Enroll(cl.ID, st.ID))
	assertSymmetry(t, s)

	// Enrolling twice does not duplicate the membership.
	require.NoError(t, s.Enroll(cl.ID, st.ID))
	updated, _ := s.ClassByID(cl.ID)
	assert.Len(t, updated.Students, 1)

	require.NoError(t, s.Withdraw(cl.ID, st.ID))
	assertSymmetry(t, s)
	updated, _ = s.ClassByID(cl.ID)
	assert.Empty(t, updated.Students)

	assert.ErrorIs(t, s.Enroll("no-such-class", st.ID), apperror.ErrNotFound)
	assert.ErrorIs(t, s.Withdraw(cl.ID, "no-such-student"), apperror.ErrNotFound)
}

func TestBulkAddStudentsIsOneTransition(t *testing.T) {
	s := newTestStore()

	var events []ChangeEvent
	s.Subscribe(func(ev ChangeEvent) {
		events = append(events, ev)
		// Observers of any event must already see the complete batch.
		assert.Len(t, s.Students(), 3)
	})

	added := s.AddStudents([]model.Student{
		{Name: "A", Username: "a", Password: "pa"},
		{Name: "B", Username: "b", Password: "pb"},
		{Name: "C", Username: "c", Password: "pc"},
	})

	require.Len(t, added, 3)
	require.Len(t, events, 1, "a batch insert is a single state transition")
	assert.Len(t, s.Students(), 3)
	assert.Len(t, s.Users(), 2+3, "each student brings a shadow user")
}

func TestEmptyBulkAddIsNoOp(t *testing.T) {
	s := newTestStore()

	events := 0
	s.Subscribe(func(ChangeEvent) { events++ })

	assert.Nil(t, s.AddStudents(nil))
	assert.Nil(t, s.AddScores([]model.Score{}))
	assert.Nil(t, s.AddAttendanceBatch(nil))

	assert.Zero(t, events)
	assert.Len(t, s.Students(), 0)
	assert.Len(t, s.Scores(), 0)
}

func TestUpdateUnknownIDIsSilentNoOp(t *testing.T) {
	s := newTestStore()
	before := s.Snapshot()

	name := "Ghost"
	s.UpdateStudent("missing", model.StudentPatch{Name: &name})
	s.UpdateClass("missing", model.ClassPatch{Name: &name})
	s.RemoveScore("missing")

	after := s.Snapshot()
	assert.Equal(t, before.Students, after.Students)
	assert.Equal(t, before.Classes, after.Classes)
	assert.Equal(t, before.Scores, after.Scores)
}

func TestSubscribersRunAfterCommit(t *testing.T) {
	s := newTestStore()

	var sawClasses int
	s.Subscribe(func(ev ChangeEvent) {
		// Reading from inside a subscriber must not deadlock and must see
		// the committed state.
		sawClasses = len(s.Classes())
	})

	s.AddClass(model.Class{Name: "Kelas 7A", TeacherID: "teacher-1"})
	assert.Equal(t, 1, sawClasses)
}

func TestCounts(t *testing.T) {
	s := newTestStore()
	s.AddClass(model.Class{Name: "Kelas 7A", TeacherID: "teacher-1"})
	s.AddStudent(model.Student{Name: "A", Username: "a", Password: "p"})

	counts := s.Counts()
	assert.Equal(t, 1, counts[ColClasses])
	assert.Equal(t, 1, counts[ColStudents])
	assert.Equal(t, 3, counts[ColUsers])
}

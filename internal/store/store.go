// Package store holds the whole application state in memory: the six entity
// collections plus the signed-in session. Every read and write in the
// application goes through a Store; mutations commit their complete resulting
// state in one step and then announce themselves to subscribers, so observers
// never see a half-applied cascade.
package store

import (
	"log"
	"slices"
	"sync"

	"anoa.com/ruangkelas/internal/model"
	"github.com/google/uuid"
)

// Collection names a persisted entity collection. The values double as the
// keys of the persisted snapshot layout.
type Collection string

const (
	ColUsers         Collection = "users"
	ColClasses       Collection = "classes"
	ColStudents      Collection = "students"
	ColScores        Collection = "scores"
	ColAnnouncements Collection = "announcements"
	ColAttendance    Collection = "attendance"
	ColSession       Collection = "current_user"
)

// Op names the kind of mutation a change event reports.
type Op string

const (
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpRemove Op = "remove"
	OpEnroll Op = "enroll"
	OpLogin  Op = "login"
	OpLogout Op = "logout"
)

// ChangeEvent is emitted after a mutation has been committed. Collection is
// the primary collection touched; cascades may have edited others, which is
// why persistence always rewrites the full snapshot.
type ChangeEvent struct {
	Collection Collection
	Op         Op
}

// Notifier is the user-facing side channel for operation outcomes, the
// server-side stand-in for the original toast popups.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes outcomes to the standard logger.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { log.Printf("[notify] %s", msg) }
func (LogNotifier) Error(msg string)   { log.Printf("[notify] ERROR: %s", msg) }

// Snapshot is the full serializable state of a Store: what gets written to
// the persistence backend on every change and read back at startup.
type Snapshot struct {
	Users         []model.User             `json:"users"`
	Classes       []model.Class            `json:"classes"`
	Students      []model.Student          `json:"students"`
	Scores        []model.Score            `json:"scores"`
	Announcements []model.Announcement     `json:"announcements"`
	Attendance    []model.AttendanceRecord `json:"attendance"`
	CurrentUser   *model.User              `json:"current_user"`
}

// SeedUsers returns the two demo accounts used whenever no persisted users
// exist: one teacher and one student, both with password "password".
func SeedUsers() []model.User {
	return []model.User{
		{
			ID:       "teacher-1",
			Username: "teacher",
			Password: "password",
			Name:     "Teacher Admin",
			Role:     model.RoleTeacher,
		},
		{
			ID:       "student-1",
			Username: "student",
			Password: "password",
			Name:     "Student Demo",
			Role:     model.RoleStudent,
		},
	}
}

// DefaultSnapshot is the dataset a fresh installation starts from.
func DefaultSnapshot() Snapshot {
	return Snapshot{Users: SeedUsers()}
}

// Store is the single source of truth for all collections and the session.
// It is constructed explicitly and handed to its consumers; there is no
// package-level instance. The mutex serializes operations so each one runs
// to completion before the next begins.
type Store struct {
	mu sync.RWMutex

	users         []model.User
	classes       []model.Class
	students      []model.Student
	scores        []model.Score
	announcements []model.Announcement
	attendance    []model.AttendanceRecord
	currentUser   *model.User

	subMu       sync.RWMutex
	subscribers []func(ChangeEvent)

	notifier Notifier
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithNotifier replaces the default log-backed notifier.
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// New builds a Store from a snapshot, normally the one the persistence
// backend loaded at startup. Nil collections become empty ones so later
// appends and serialization behave uniformly.
func New(snap Snapshot, opts ...Option) *Store {
	s := &Store{
		users:         orEmpty(snap.Users),
		classes:       orEmpty(snap.Classes),
		students:      orEmpty(snap.Students),
		scores:        orEmpty(snap.Scores),
		announcements: orEmpty(snap.Announcements),
		attendance:    orEmpty(snap.Attendance),
		currentUser:   snap.CurrentUser,
		notifier:      LogNotifier{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func orEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

// Subscribe registers a callback invoked after every committed mutation.
// Callbacks run synchronously on the mutating goroutine, after the state
// lock has been released.
func (s *Store) Subscribe(fn func(ChangeEvent)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) emit(ev ChangeEvent) {
	s.subMu.RLock()
	subs := slices.Clone(s.subscribers)
	s.subMu.RUnlock()
	for _, fn := range subs {
		fn(ev)
	}
}

// Snapshot captures the current state for serialization.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var cur *model.User
	if s.currentUser != nil {
		u := *s.currentUser
		cur = &u
	}
	return Snapshot{
		Users:         slices.Clone(s.users),
		Classes:       slices.Clone(s.classes),
		Students:      slices.Clone(s.students),
		Scores:        slices.Clone(s.scores),
		Announcements: slices.Clone(s.announcements),
		Attendance:    slices.Clone(s.attendance),
		CurrentUser:   cur,
	}
}

// Counts reports the size of every collection, used by the dashboard.
func (s *Store) Counts() map[Collection]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[Collection]int{
		ColUsers:         len(s.users),
		ColClasses:       len(s.classes),
		ColStudents:      len(s.students),
		ColScores:        len(s.scores),
		ColAnnouncements: len(s.announcements),
		ColAttendance:    len(s.attendance),
	}
}

func newID() string {
	return uuid.NewString()
}

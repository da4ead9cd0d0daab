// Package storage persists the store's snapshot as named key-value entries,
// one per collection plus one for the session pointer. The medium is
// pluggable: a JSON file, Redis keys, or a Postgres key-value table. Each
// entry is decoded independently on load, so one corrupt entry never takes
// the others down with it.
package storage

import (
	"context"
	"encoding/json"
	"log"

	"anoa.com/ruangkelas/internal/model"
	"anoa.com/ruangkelas/internal/store"
)

// Entries maps snapshot entry names to their serialized JSON payloads.
type Entries map[string][]byte

// SnapshotKeys lists every entry name a backend is expected to hold.
var SnapshotKeys = []string{
	string(store.ColUsers),
	string(store.ColClasses),
	string(store.ColStudents),
	string(store.ColScores),
	string(store.ColAnnouncements),
	string(store.ColAttendance),
	string(store.ColSession),
}

// Backend reads and writes the named entries on some medium.
type Backend interface {
	Load(ctx context.Context) (Entries, error)
	Save(ctx context.Context, entries Entries) error
}

// Encode serializes a snapshot into its named entries.
func Encode(snap store.Snapshot) (Entries, error) {
	entries := make(Entries, len(SnapshotKeys))
	parts := map[string]any{
		string(store.ColUsers):         snap.Users,
		string(store.ColClasses):       snap.Classes,
		string(store.ColStudents):      snap.Students,
		string(store.ColScores):        snap.Scores,
		string(store.ColAnnouncements): snap.Announcements,
		string(store.ColAttendance):    snap.Attendance,
		string(store.ColSession):       snap.CurrentUser,
	}
	for key, part := range parts {
		raw, err := json.Marshal(part)
		if err != nil {
			return nil, err
		}
		entries[key] = raw
	}
	return entries, nil
}

// Decode rebuilds a snapshot from entries. A missing or malformed entry
// falls back to that entry's default — seed accounts for users, empty
// collections for everything else — with a logged warning, and decoding
// continues with the remaining entries.
func Decode(entries Entries) store.Snapshot {
	return store.Snapshot{
		Users:         decodeSlice(entries, string(store.ColUsers), store.SeedUsers()),
		Classes:       decodeSlice(entries, string(store.ColClasses), []model.Class{}),
		Students:      decodeSlice(entries, string(store.ColStudents), []model.Student{}),
		Scores:        decodeSlice(entries, string(store.ColScores), []model.Score{}),
		Announcements: decodeSlice(entries, string(store.ColAnnouncements), []model.Announcement{}),
		Attendance:    decodeSlice(entries, string(store.ColAttendance), []model.AttendanceRecord{}),
		CurrentUser:   decodeSession(entries),
	}
}

func decodeSlice[T any](entries Entries, key string, fallback []T) []T {
	raw, ok := entries[key]
	if !ok || len(raw) == 0 {
		return fallback
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("storage: entry %q is malformed, using defaults: %v", key, err)
		return fallback
	}
	if out == nil {
		return fallback
	}
	return out
}

func decodeSession(entries Entries) *model.User {
	raw, ok := entries[string(store.ColSession)]
	if !ok || len(raw) == 0 {
		return nil
	}
	var u *model.User
	if err := json.Unmarshal(raw, &u); err != nil {
		log.Printf("storage: entry %q is malformed, clearing session: %v", store.ColSession, err)
		return nil
	}
	return u
}

// Load reads the persisted snapshot through the backend. Any load failure is
// logged and answered with the default dataset; startup never blocks on a
// broken or empty medium.
func Load(ctx context.Context, b Backend) store.Snapshot {
	entries, err := b.Load(ctx)
	if err != nil {
		log.Printf("storage: load failed, starting with defaults: %v", err)
		return store.DefaultSnapshot()
	}
	return Decode(entries)
}

// Attach subscribes a persistence writer to the store: every committed
// mutation re-serializes the full snapshot and writes it through the
// backend. A failed write is reported as a non-blocking warning; in-memory
// state stays authoritative either way.
func Attach(st *store.Store, b Backend, notifier store.Notifier) {
	st.Subscribe(func(store.ChangeEvent) {
		entries, err := Encode(st.Snapshot())
		if err == nil {
			err = b.Save(context.Background(), entries)
		}
		if err != nil {
			log.Printf("storage: save failed: %v", err)
			notifier.Error("Gagal menyimpan data ke penyimpanan lokal")
		}
	})
}

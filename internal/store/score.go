package store

import (
	"fmt"
	"slices"

	"anoa.com/ruangkelas/internal/model"
)

// Scores returns a copy of the score collection.
func (s *Store) Scores() []model.Score {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.scores)
}

// ScoreByID looks a score up by id.
func (s *Store) ScoreByID(id string) (model.Score, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.scores {
		if s.scores[i].ID == id {
			return s.scores[i], true
		}
	}
	return model.Score{}, false
}

// AddScore assigns a fresh id and appends the score. The value range is the
// caller's responsibility; forms and import adapters validate before calling.
func (s *Store) AddScore(sc model.Score) model.Score {
	sc.ID = newID()

	s.mu.Lock()
	s.scores = append(s.scores, sc)
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColScores, Op: OpAdd})
	s.notifier.Success("Nilai berhasil ditambahkan")
	return sc
}

// AddScores inserts a whole batch of scores in a single state transition.
// An empty batch is a strict no-op.
func (s *Store) AddScores(batch []model.Score) []model.Score {
	if len(batch) == 0 {
		return nil
	}

	added := make([]model.Score, 0, len(batch))
	for _, sc := range batch {
		sc.ID = newID()
		added = append(added, sc)
	}

	s.mu.Lock()
	s.scores = append(s.scores, added...)
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColScores, Op: OpAdd})
	s.notifier.Success(fmt.Sprintf("%d nilai berhasil ditambahkan", len(added)))
	return added
}

// UpdateScore merges the patch into the score with the given id. An unknown
// id is a silent no-op.
func (s *Store) UpdateScore(id string, patch model.ScorePatch) {
	s.mu.Lock()
	for i := range s.scores {
		if s.scores[i].ID != id {
			continue
		}
		if patch.StudentID != nil {
			s.scores[i].StudentID = *patch.StudentID
		}
		if patch.ClassID != nil {
			s.scores[i].ClassID = *patch.ClassID
		}
		if patch.Subject != nil {
			s.scores[i].Subject = *patch.Subject
		}
		if patch.Value != nil {
			s.scores[i].Value = *patch.Value
		}
		if patch.Date != nil {
			s.scores[i].Date = *patch.Date
		}
		break
	}
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColScores, Op: OpUpdate})
	s.notifier.Success("Nilai berhasil diperbarui")
}

// RemoveScore deletes the score with the given id.
func (s *Store) RemoveScore(id string) {
	s.mu.Lock()
	s.scores = slices.DeleteFunc(s.scores, func(sc model.Score) bool {
		return sc.ID == id
	})
	s.mu.Unlock()

	s.emit(ChangeEvent{Collection: ColScores, Op: OpRemove})
	s.notifier.Success("Nilai berhasil dihapus")
}

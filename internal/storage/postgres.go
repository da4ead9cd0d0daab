package storage

import (
	"context"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StateEntry is one named snapshot entry as a database row. The value is an
// opaque JSON blob; nothing ever queries inside it, the table is purely a
// key-value mirror of the snapshot.
type StateEntry struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// PostgresBackend keeps the snapshot in a state_entries table via gorm, for
// deployments that already run a database and want the snapshot alongside
// their backups.
type PostgresBackend struct {
	db *gorm.DB
}

func NewPostgresBackend(dsn string) (*PostgresBackend, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&StateEntry{}); err != nil {
		return nil, err
	}
	return &PostgresBackend{db: db}, nil
}

func (b *PostgresBackend) Load(ctx context.Context) (Entries, error) {
	var rows []StateEntry
	if err := b.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	entries := make(Entries, len(rows))
	for _, row := range rows {
		entries[row.Key] = row.Value
	}
	return entries, nil
}

func (b *PostgresBackend) Save(ctx context.Context, entries Entries) error {
	rows := make([]StateEntry, 0, len(entries))
	for key, raw := range entries {
		rows = append(rows, StateEntry{Key: key, Value: raw})
	}
	return b.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&rows).Error
}

package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nvelez/clientbridge-backend/internal/logger"
)

// slot is one serialized collection. The table is the durable analog
// of the browser local-storage area the application originally wrote
// to: one row per storage key.
type slot struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     []byte    `gorm:"not null;column:value"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at"`
}

func (slot) TableName() string { return "slot" }

type sqliteStore struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSQLiteStore(log *logger.Logger, path string) (Store, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if path == "" {
		path = "clientbridge.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if err := db.AutoMigrate(&slot{}); err != nil {
		return nil, fmt.Errorf("migrate slot table: %w", err)
	}

	return &sqliteStore{
		db:  db,
		log: log.With("store", "SQLiteStore"),
	}, nil
}

func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var row slot
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row.Value, nil
}

func (s *sqliteStore) Set(ctx context.Context, key string, value []byte) error {
	row := slot{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}

func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&slot{}, "key = ?", key).Error
}

func (s *sqliteStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).
		Model(&slot{}).
		Order("key").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (s *sqliteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

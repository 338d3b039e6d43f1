package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/spendcount/backend/internal/integration/persistence/model"
)

// GormStore is a KeyValueStore backed by a relational database through GORM.
// Records live in a single ledger_records table keyed by record_key.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store over an existing GORM connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get returns the value stored under key.
func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	var record model.LedgerRecordModel
	err := s.db.WithContext(ctx).
		Where("record_key = ?", key).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get record %s: %w", key, err)
	}
	return record.RecordValue, true, nil
}

// Set stores value under key, replacing any existing record.
func (s *GormStore) Set(ctx context.Context, key, value string) error {
	record := model.LedgerRecordModel{RecordKey: key, RecordValue: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "record_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"record_value"}),
		}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("set record %s: %w", key, err)
	}
	return nil
}

// Delete removes the given keys. Missing keys are not an error.
func (s *GormStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	err := s.db.WithContext(ctx).
		Where("record_key IN ?", keys).
		Delete(&model.LedgerRecordModel{}).Error
	if err != nil {
		return fmt.Errorf("delete records: %w", err)
	}
	return nil
}

// Keys returns every stored key that starts with prefix.
func (s *GormStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).
		Model(&model.LedgerRecordModel{}).
		Where("record_key LIKE ?", prefix+"%").
		Pluck("record_key", &keys).Error
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return keys, nil
}

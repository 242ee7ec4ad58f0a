package repository

import (
	"context"

	"gorm.io/gorm"

	"geoportal/internal/model"
)

// LogRepository defines audit log persistence operations.
type LogRepository interface {
	Create(ctx context.Context, entry *model.Log) error
	FindByID(ctx context.Context, id uint) (*model.Log, error)
	List(ctx context.Context) ([]model.Log, error)
	Delete(ctx context.Context, id uint) error
}

type logRepository struct {
	db *gorm.DB
}

// NewLogRepository builds a GORM-backed repository.
func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Create(ctx context.Context, entry *model.Log) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *logRepository) FindByID(ctx context.Context, id uint) (*model.Log, error) {
	var entry model.Log
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// List returns all entries, newest first. Chronological order is a
// convenience only; callers that depend on ordering must sort by timestamp.
func (r *logRepository) List(ctx context.Context) ([]model.Log, error) {
	var entries []model.Log
	if err := r.db.WithContext(ctx).Order("timestamp DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *logRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Log{}, id).Error
}

package repository

import (
	"context"

	"gorm.io/gorm"

	"geoportal/internal/model"
)

// SpatialDataRepository defines layer metadata persistence operations.
type SpatialDataRepository interface {
	Create(ctx context.Context, layer *model.SpatialData) error
	Update(ctx context.Context, layer *model.SpatialData) error
	FindByID(ctx context.Context, id uint) (*model.SpatialData, error)
	List(ctx context.Context) ([]model.SpatialData, error)
	Delete(ctx context.Context, id uint) error
}

type spatialDataRepository struct {
	db *gorm.DB
}

// NewSpatialDataRepository builds a GORM-backed repository.
func NewSpatialDataRepository(db *gorm.DB) SpatialDataRepository {
	return &spatialDataRepository{db: db}
}

func (r *spatialDataRepository) Create(ctx context.Context, layer *model.SpatialData) error {
	return r.db.WithContext(ctx).Create(layer).Error
}

func (r *spatialDataRepository) Update(ctx context.Context, layer *model.SpatialData) error {
	return r.db.WithContext(ctx).Save(layer).Error
}

func (r *spatialDataRepository) FindByID(ctx context.Context, id uint) (*model.SpatialData, error) {
	var layer model.SpatialData
	if err := r.db.WithContext(ctx).First(&layer, id).Error; err != nil {
		return nil, err
	}
	return &layer, nil
}

func (r *spatialDataRepository) List(ctx context.Context) ([]model.SpatialData, error) {
	var layers []model.SpatialData
	if err := r.db.WithContext(ctx).Find(&layers).Error; err != nil {
		return nil, err
	}
	return layers, nil
}

func (r *spatialDataRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.SpatialData{}, id).Error
}

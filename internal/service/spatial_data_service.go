package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"geoportal/internal/cache"
	apperrors "geoportal/internal/errors"
	"geoportal/internal/model"
	"geoportal/internal/repository"
)

const (
	spatialListCacheKey = "spatial_data:list"
	spatialListCacheTTL = 5 * time.Minute

	// defaultGroup labels layers that were created without a group.
	defaultGroup = "Uncategorized"
)

// CreateSpatialDataInput carries the fields of a new layer. Optional fields
// left empty are filled with derived defaults.
type CreateSpatialDataInput struct {
	Name        string
	Category    model.Category
	Description string
	Group       string
	WFSGetURL   string
	WFSPostURL  string
}

// UpdateSpatialDataInput is a partial update. Nil means "keep the stored
// value"; a non-nil empty string clears the field. Name and Category reject
// empty values.
type UpdateSpatialDataInput struct {
	Name        *string
	Category    *model.Category
	Description *string
	Group       *string
	WFSGetURL   *string
	WFSPostURL  *string
}

// SpatialDataService manages layer metadata. Reads are open to any
// authenticated caller; all writes require the admin role.
type SpatialDataService interface {
	List(ctx context.Context) ([]model.SpatialData, error)
	Create(ctx context.Context, in CreateSpatialDataInput, callerRole model.Role) (*model.SpatialData, error)
	Update(ctx context.Context, id uint, in UpdateSpatialDataInput, callerRole model.Role) (*model.SpatialData, error)
	Delete(ctx context.Context, id uint, callerRole model.Role) error
}

type spatialDataService struct {
	repo       repository.SpatialDataRepository
	cache      *cache.Client
	wmsBaseURL string
}

// NewSpatialDataService creates a new layer registry service. wmsBaseURL is
// the endpoint unset WFS URLs default to.
func NewSpatialDataService(repo repository.SpatialDataRepository, cache *cache.Client, wmsBaseURL string) SpatialDataService {
	return &spatialDataService{
		repo:       repo,
		cache:      cache,
		wmsBaseURL: wmsBaseURL,
	}
}

// List returns all layers, serving from cache when possible.
func (s *spatialDataService) List(ctx context.Context) ([]model.SpatialData, error) {
	var cached []model.SpatialData
	if s.cache.GetJSON(ctx, spatialListCacheKey, &cached) {
		return cached, nil
	}

	layers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, spatialListCacheKey, layers, spatialListCacheTTL)
	return layers, nil
}

// Create stores a new layer. Unset optional fields get derived defaults:
// a templated description, the fixed group label, and the configured WMS
// base endpoint for both WFS URLs.
func (s *spatialDataService) Create(ctx context.Context, in CreateSpatialDataInput, callerRole model.Role) (*model.SpatialData, error) {
	if callerRole != model.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}
	if in.Name == "" || in.Category == "" {
		return nil, apperrors.ErrMissingLayerFields
	}
	if !in.Category.Valid() {
		return nil, apperrors.ErrInvalidCategory
	}

	layer := &model.SpatialData{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Group:       in.Group,
		WFSGetURL:   in.WFSGetURL,
		WFSPostURL:  in.WFSPostURL,
	}
	if layer.Description == "" {
		layer.Description = fmt.Sprintf("Spatial data for %s", in.Name)
	}
	if layer.Group == "" {
		layer.Group = defaultGroup
	}
	if layer.WFSGetURL == "" {
		layer.WFSGetURL = s.wmsBaseURL
	}
	if layer.WFSPostURL == "" {
		layer.WFSPostURL = s.wmsBaseURL
	}

	if err := s.repo.Create(ctx, layer); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, spatialListCacheKey)
	return layer, nil
}

// Update applies a partial update. Last write wins; there is no version
// check on concurrent edits.
func (s *spatialDataService) Update(ctx context.Context, id uint, in UpdateSpatialDataInput, callerRole model.Role) (*model.SpatialData, error) {
	if callerRole != model.RoleAdmin {
		return nil, apperrors.ErrForbidden
	}

	layer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, apperrors.ErrMissingLayerFields
		}
		layer.Name = *in.Name
	}
	if in.Category != nil {
		if !in.Category.Valid() {
			return nil, apperrors.ErrInvalidCategory
		}
		layer.Category = *in.Category
	}
	if in.Description != nil {
		layer.Description = *in.Description
	}
	if in.Group != nil {
		layer.Group = *in.Group
	}
	if in.WFSGetURL != nil {
		layer.WFSGetURL = *in.WFSGetURL
	}
	if in.WFSPostURL != nil {
		layer.WFSPostURL = *in.WFSPostURL
	}

	if err := s.repo.Update(ctx, layer); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, spatialListCacheKey)
	return layer, nil
}

// Delete removes a layer unconditionally. Existing audit log entries that
// mention the layer are untouched.
func (s *spatialDataService) Delete(ctx context.Context, id uint, callerRole model.Role) error {
	if callerRole != model.RoleAdmin {
		return apperrors.ErrForbidden
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, spatialListCacheKey)
	return nil
}

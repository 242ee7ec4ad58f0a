package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "geoportal/internal/errors"
	"geoportal/internal/model"
	"geoportal/internal/repository"
)

const defaultDevice = "Unknown"

// RecordLogInput carries the caller-supplied fields of a new audit entry.
// IsSuccess is a pointer so "omitted" (defaults to true) and "explicitly
// false" can be told apart.
type RecordLogInput struct {
	ActionType    string
	ActionDetails string
	IsSuccess     *bool
	Device        string
}

// LogService handles the audit log of user actions.
type LogService interface {
	Record(ctx context.Context, userID uint, in RecordLogInput) (*model.Log, error)
	List(ctx context.Context) ([]model.LogView, error)
	Delete(ctx context.Context, id uint, callerRole model.Role) error
}

type logService struct {
	logRepo  repository.LogRepository
	userRepo repository.UserRepository
}

// NewLogService creates a new audit log service.
func NewLogService(logRepo repository.LogRepository, userRepo repository.UserRepository) LogService {
	return &logService{
		logRepo:  logRepo,
		userRepo: userRepo,
	}
}

// Record persists an audit entry for userID with a server-assigned
// timestamp. The user must exist; validation failures happen before any
// store write, so no partial row is ever created.
func (s *logService) Record(ctx context.Context, userID uint, in RecordLogInput) (*model.Log, error) {
	if in.ActionType == "" {
		return nil, apperrors.ErrActionTypeRequired
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	isSuccess := true
	if in.IsSuccess != nil {
		isSuccess = *in.IsSuccess
	}
	device := in.Device
	if device == "" {
		device = defaultDevice
	}

	entry := &model.Log{
		UserID:        userID,
		ActionType:    in.ActionType,
		ActionDetails: in.ActionDetails,
		IsSuccess:     isSuccess,
		Device:        device,
		Timestamp:     time.Now(),
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns all entries denormalized with each user's display name and
// role. Entries whose user row no longer exists are reported with
// placeholder strings instead of failing the whole listing.
func (s *logService) List(ctx context.Context) ([]model.LogView, error) {
	entries, err := s.logRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]model.LogView, 0, len(entries))
	if len(entries) == 0 {
		return views, nil
	}

	seen := make(map[uint]bool)
	ids := make([]uint, 0, len(entries))
	for _, entry := range entries {
		if !seen[entry.UserID] {
			seen[entry.UserID] = true
			ids = append(ids, entry.UserID)
		}
	}

	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]model.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	for _, entry := range entries {
		view := model.LogView{
			ID:            entry.ID,
			UserID:        entry.UserID,
			ActionType:    entry.ActionType,
			ActionDetails: entry.ActionDetails,
			IsSuccess:     entry.IsSuccess,
			Timestamp:     entry.Timestamp,
			Device:        entry.Device,
			UserName:      model.UnknownUserName,
			Role:          model.UnknownUserRole,
		}
		if u, ok := byID[entry.UserID]; ok {
			view.UserName = u.Name
			view.Role = string(u.Role)
		}
		views = append(views, view)
	}
	return views, nil
}

// Delete removes an entry permanently. Admin only.
func (s *logService) Delete(ctx context.Context, id uint, callerRole model.Role) error {
	if callerRole != model.RoleAdmin {
		return apperrors.ErrForbidden
	}

	if _, err := s.logRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}

	return s.logRepo.Delete(ctx, id)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"geoportal/internal/errors"
	"geoportal/internal/model"
)

// MockLogRepository is a mock implementation of LogRepository.
type MockLogRepository struct {
	mock.Mock
}

func (m *MockLogRepository) Create(ctx context.Context, entry *model.Log) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogRepository) FindByID(ctx context.Context, id uint) (*model.Log, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Log), args.Error(1)
}

func (m *MockLogRepository) List(ctx context.Context) ([]model.Log, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Log), args.Error(1)
}

func (m *MockLogRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestLogService_Record(t *testing.T) {
	falseVal := false

	tests := []struct {
		name          string
		userID        uint
		input         RecordLogInput
		setupMock     func(*MockLogRepository, *MockUserRepository)
		expectedError error
		check         func(*testing.T, *model.Log)
	}{
		{
			name:   "defaults applied",
			userID: 1,
			input:  RecordLogInput{ActionType: "copy"},
			setupMock: func(mLog *MockLogRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
				mLog.On("Create", mock.Anything, mock.AnythingOfType("*model.Log")).Return(nil)
			},
			check: func(t *testing.T, entry *model.Log) {
				assert.Equal(t, "copy", entry.ActionType)
				assert.True(t, entry.IsSuccess)
				assert.Equal(t, "Unknown", entry.Device)
				assert.WithinDuration(t, time.Now(), entry.Timestamp, time.Minute)
			},
		},
		{
			name:   "explicit failure flag and device",
			userID: 1,
			input:  RecordLogInput{ActionType: "view", ActionDetails: "Viewed map", IsSuccess: &falseVal, Device: "Mobile"},
			setupMock: func(mLog *MockLogRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
				mLog.On("Create", mock.Anything, mock.AnythingOfType("*model.Log")).Return(nil)
			},
			check: func(t *testing.T, entry *model.Log) {
				assert.False(t, entry.IsSuccess)
				assert.Equal(t, "Mobile", entry.Device)
				assert.Equal(t, "Viewed map", entry.ActionDetails)
			},
		},
		{
			name:   "missing action type rejected before any store access",
			userID: 1,
			input:  RecordLogInput{},
			setupMock: func(mLog *MockLogRepository, mUser *MockUserRepository) {
				// no expectations: neither repository may be touched
			},
			expectedError: errors.ErrActionTypeRequired,
		},
		{
			name:   "unknown user",
			userID: 99,
			input:  RecordLogInput{ActionType: "copy"},
			setupMock: func(mLog *MockLogRepository, mUser *MockUserRepository) {
				mUser.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLogRepo := new(MockLogRepository)
			mockUserRepo := new(MockUserRepository)
			tt.setupMock(mockLogRepo, mockUserRepo)

			service := NewLogService(mockLogRepo, mockUserRepo)
			entry, err := service.Record(context.Background(), tt.userID, tt.input)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, entry)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, entry)
				tt.check(t, entry)
			}

			mockLogRepo.AssertExpectations(t)
			mockUserRepo.AssertExpectations(t)
		})
	}
}

func TestLogService_List_DenormalizesUsers(t *testing.T) {
	mockLogRepo := new(MockLogRepository)
	mockUserRepo := new(MockUserRepository)

	mockLogRepo.On("List", mock.Anything).Return([]model.Log{
		{ID: 1, UserID: 1, ActionType: "copy", IsSuccess: true, Device: "Desktop"},
		{ID: 2, UserID: 42, ActionType: "view", IsSuccess: false, Device: "Mobile"},
	}, nil)
	mockUserRepo.On("FindByIDs", mock.Anything, []uint{1, 42}).Return([]model.User{
		{ID: 1, Name: "Admin", Role: model.RoleAdmin},
	}, nil)

	service := NewLogService(mockLogRepo, mockUserRepo)
	views, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, views, 2)

	assert.Equal(t, "Admin", views[0].UserName)
	assert.Equal(t, "admin", views[0].Role)

	// Rows whose user is gone get placeholders, not an error.
	assert.Equal(t, model.UnknownUserName, views[1].UserName)
	assert.Equal(t, model.UnknownUserRole, views[1].Role)

	mockLogRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestLogService_List_Empty(t *testing.T) {
	mockLogRepo := new(MockLogRepository)
	mockUserRepo := new(MockUserRepository)
	mockLogRepo.On("List", mock.Anything).Return([]model.Log{}, nil)

	service := NewLogService(mockLogRepo, mockUserRepo)
	views, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, views)
	mockLogRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestLogService_Delete(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		callerRole    model.Role
		setupMock     func(*MockLogRepository)
		expectedError error
	}{
		{
			name:       "admin deletes existing entry",
			id:         1,
			callerRole: model.RoleAdmin,
			setupMock: func(m *MockLogRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.Log{ID: 1}, nil)
				m.On("Delete", mock.Anything, uint(1)).Return(nil)
			},
		},
		{
			name:       "non-admin rejected without store access",
			id:         1,
			callerRole: model.RoleUser,
			setupMock: func(m *MockLogRepository) {
				// no expectations: rejection happens before any lookup
			},
			expectedError: errors.ErrForbidden,
		},
		{
			name:       "unknown id",
			id:         99,
			callerRole: model.RoleAdmin,
			setupMock: func(m *MockLogRepository) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLogRepo := new(MockLogRepository)
			mockUserRepo := new(MockUserRepository)
			tt.setupMock(mockLogRepo)

			service := NewLogService(mockLogRepo, mockUserRepo)
			err := service.Delete(context.Background(), tt.id, tt.callerRole)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			mockLogRepo.AssertExpectations(t)
		})
	}
}

package service_test

import (
	"context"

	"levelhub/internal/http-api/dto"
	"levelhub/internal/http-api/models"
	"levelhub/internal/storage"

	"github.com/stretchr/testify/mock"
)

// --- MOCK REPOSITORIES ---

type MockLevelRepo struct {
	mock.Mock
}

func (m *MockLevelRepo) Create(ctx context.Context, level *models.Level) error {
	args := m.Called(ctx, level)
	return args.Error(0)
}

func (m *MockLevelRepo) Update(ctx context.Context, level *models.Level) error {
	args := m.Called(ctx, level)
	return args.Error(0)
}

func (m *MockLevelRepo) Delete(ctx context.Context, levelID int64) error {
	args := m.Called(ctx, levelID)
	return args.Error(0)
}

func (m *MockLevelRepo) GetByID(ctx context.Context, levelID int64) (*models.Level, error) {
	args := m.Called(ctx, levelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Level), args.Error(1)
}

func (m *MockLevelRepo) ListByUser(ctx context.Context, userID string, includeUnpublished bool) ([]models.Level, error) {
	args := m.Called(ctx, userID, includeUnpublished)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Level), args.Error(1)
}

func (m *MockLevelRepo) Feed(ctx context.Context, filters dto.SearchFilters) ([]dto.FeedItem, int64, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]dto.FeedItem), args.Get(1).(int64), args.Error(2)
}

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) CreateWithRating(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepo) UpdateWithRating(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepo) DeleteWithRating(ctx context.Context, commentID, levelID int64) error {
	args := m.Called(ctx, commentID, levelID)
	return args.Error(0)
}

func (m *MockCommentRepo) GetByID(ctx context.Context, commentID int64) (*models.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepo) ListByLevel(ctx context.Context, levelID int64) ([]models.Comment, error) {
	args := m.Called(ctx, levelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// --- MOCK AVATAR STORAGE ---

type MockAvatarStorage struct {
	mock.Mock
}

func (m *MockAvatarStorage) UploadURL(ctx context.Context, userID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	args := m.Called(ctx, userID, contentType, contentLength)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UploadInfo), args.Error(1)
}

func (m *MockAvatarStorage) ConfirmUpload(ctx context.Context, userID, key string) (string, error) {
	args := m.Called(ctx, userID, key)
	return args.String(0), args.Error(1)
}

package service_test

import (
	"context"
	"testing"

	"levelhub/internal/http-api/dto"
	"levelhub/internal/http-api/models"
	"levelhub/internal/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }

func TestLevelService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("published level visible to anyone", func(t *testing.T) {
		levelRepo := new(MockLevelRepo)
		commentRepo := new(MockCommentRepo)
		svc := service.NewLevelService(levelRepo, commentRepo)

		level := &models.Level{ID: 1, UserID: "owner", Name: "Lava Run", Published: true}
		levelRepo.On("GetByID", mock.Anything, int64(1)).Return(level, nil).Once()
		commentRepo.On("ListByLevel", mock.Anything, int64(1)).Return([]models.Comment{
			{ID: 10, Content: "great", Rating: 5, User: models.User{Username: "alice"}},
		}, nil).Once()

		detail, err := svc.Get(ctx, 1, "")
		assert.NoError(t, err)
		assert.Equal(t, "Lava Run", detail.Level.Name)
		assert.Len(t, detail.Comments, 1)
		assert.Equal(t, "alice", detail.Comments[0].Username)
	})

	t.Run("unpublished level hidden from strangers as not found", func(t *testing.T) {
		levelRepo := new(MockLevelRepo)
		commentRepo := new(MockCommentRepo)
		svc := service.NewLevelService(levelRepo, commentRepo)

		level := &models.Level{ID: 2, UserID: "owner", Published: false}
		levelRepo.On("GetByID", mock.Anything, int64(2)).Return(level, nil).Once()

		_, err := svc.Get(ctx, 2, "someone-else")
		assert.ErrorIs(t, err, service.ErrNotFound)
		commentRepo.AssertNotCalled(t, "ListByLevel")
	})

	t.Run("unpublished level visible to its owner", func(t *testing.T) {
		levelRepo := new(MockLevelRepo)
		commentRepo := new(MockCommentRepo)
		svc := service.NewLevelService(levelRepo, commentRepo)

		level := &models.Level{ID: 3, UserID: "owner", Published: false}
		levelRepo.On("GetByID", mock.Anything, int64(3)).Return(level, nil).Once()
		commentRepo.On("ListByLevel", mock.Anything, int64(3)).Return([]models.Comment{}, nil).Once()

		detail, err := svc.Get(ctx, 3, "owner")
		assert.NoError(t, err)
		assert.Empty(t, detail.Comments)
	})

	t.Run("missing level", func(t *testing.T) {
		levelRepo := new(MockLevelRepo)
		commentRepo := new(MockCommentRepo)
		svc := service.NewLevelService(levelRepo, commentRepo)

		levelRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := svc.Get(ctx, 99, "anyone")
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestLevelService_Create(t *testing.T) {
	levelRepo := new(MockLevelRepo)
	commentRepo := new(MockCommentRepo)
	svc := service.NewLevelService(levelRepo, commentRepo)

	req := dto.CreateLevelDTO{
		Name:       "Sky Fortress",
		Difficulty: models.DifficultyHard,
		Published:  true,
	}

	// the stored owner must be the principal regardless of the payload
	levelRepo.On("Create", mock.Anything, mock.MatchedBy(func(l *models.Level) bool {
		return l.UserID == "principal-1" && l.Name == "Sky Fortress"
	})).Return(nil).Once()

	resp, err := svc.Create(context.Background(), "principal-1", req)
	assert.NoError(t, err)
	assert.Equal(t, "principal-1", resp.OwnerID)
	levelRepo.AssertExpectations(t)
}

func TestLevelService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can update", func(t *testing.T) {
		levelRepo := new(MockLevelRepo)
		commentRepo := new(MockCommentRepo)
		svc := service.NewLevelService(levelRepo, commentRepo)

		level := &models.Level{ID: 5, UserID: "owner", Name: "old", Difficulty: models.DifficultyEasy}
		levelRepo.On("GetByID", mock.Anything, int64(5)).Return(level, nil).Once()
		levelRepo.On("Update", mock.Anything, mock.MatchedBy(func(l *models.Level) bool {
			return l.Name == "new" && l.Published
		})).Return(nil).Once()

		resp, err := svc.Update(ctx, "owner", dto.UpdateLevelDTO{
			LevelID:   5,
			Name:      stringPtr("new"),
			Published: boolPtr(true),
		})
		assert.NoError(t, err)
		assert.Equal(t, "new", resp.Name)
	})

	t.Run("non-owner gets forbidden and nothing is written", func(t *testing.T) {
		levelRepo := new(MockLevelRepo)
		commentRepo := new(MockCommentRepo)
		svc := service.NewLevelService(levelRepo, commentRepo)

		level := &models.Level{ID: 5, UserID: "owner"}
		levelRepo.On("GetByID", mock.Anything, int64(5)).Return(level, nil).Once()

		_, err := svc.Update(ctx, "intruder", dto.UpdateLevelDTO{LevelID: 5, Name: stringPtr("hijack")})
		assert.ErrorIs(t, err, service.ErrForbidden)
		levelRepo.AssertNotCalled(t, "Update")
	})
}

func TestLevelService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can delete", func(t *testing.T) {
		levelRepo := new(MockLevelRepo)
		commentRepo := new(MockCommentRepo)
		svc := service.NewLevelService(levelRepo, commentRepo)

		levelRepo.On("GetByID", mock.Anything, int64(7)).Return(&models.Level{ID: 7, UserID: "owner"}, nil).Once()
		levelRepo.On("Delete", mock.Anything, int64(7)).Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, "owner", 7))
		levelRepo.AssertExpectations(t)
	})

	t.Run("non-owner gets forbidden", func(t *testing.T) {
		levelRepo := new(MockLevelRepo)
		commentRepo := new(MockCommentRepo)
		svc := service.NewLevelService(levelRepo, commentRepo)

		levelRepo.On("GetByID", mock.Anything, int64(7)).Return(&models.Level{ID: 7, UserID: "owner"}, nil).Once()

		assert.ErrorIs(t, svc.Delete(ctx, "intruder", 7), service.ErrForbidden)
		levelRepo.AssertNotCalled(t, "Delete")
	})
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"board-backend/domain"
)

// LikeRepository is a mock type for the domain.LikeRepository
type LikeRepository struct {
	mock.Mock
}

func (m *LikeRepository) Insert(ctx context.Context, like domain.CommentLike) error {
	ret := m.Called(ctx, like)
	return ret.Error(0)
}

func (m *LikeRepository) Delete(ctx context.Context, commentID, userID int64) error {
	ret := m.Called(ctx, commentID, userID)
	return ret.Error(0)
}

func (m *LikeRepository) IsLiked(ctx context.Context, commentID, userID int64) (bool, error) {
	ret := m.Called(ctx, commentID, userID)
	return ret.Bool(0), ret.Error(1)
}

func (m *LikeRepository) CountByComment(ctx context.Context, commentID int64) (int64, error) {
	ret := m.Called(ctx, commentID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *LikeRepository) DeleteByComment(ctx context.Context, commentID int64) error {
	ret := m.Called(ctx, commentID)
	return ret.Error(0)
}

var _ domain.LikeRepository = (*LikeRepository)(nil)

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"board-backend/domain"
)

// LikeUsecase is a mock type for the domain.LikeUsecase
type LikeUsecase struct {
	mock.Mock
}

func (m *LikeUsecase) Toggle(ctx context.Context, commentID, userID int64) (domain.LikeResult, error) {
	ret := m.Called(ctx, commentID, userID)
	return ret.Get(0).(domain.LikeResult), ret.Error(1)
}

func (m *LikeUsecase) GetLikeCount(ctx context.Context, commentID int64) (int64, error) {
	ret := m.Called(ctx, commentID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *LikeUsecase) IsLikedBy(ctx context.Context, commentID, userID int64) (bool, error) {
	ret := m.Called(ctx, commentID, userID)
	return ret.Bool(0), ret.Error(1)
}

var _ domain.LikeUsecase = (*LikeUsecase)(nil)

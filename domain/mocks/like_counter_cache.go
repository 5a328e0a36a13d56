package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"board-backend/domain"
)

// LikeCounterCache is a mock type for the domain.LikeCounterCache
type LikeCounterCache struct {
	mock.Mock
}

func (m *LikeCounterCache) GetLikeCount(ctx context.Context, commentID int64) (int64, error) {
	ret := m.Called(ctx, commentID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (m *LikeCounterCache) MGetLikeCounts(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	ret := m.Called(ctx, commentIDs)
	var res map[int64]int64
	if ret.Get(0) != nil {
		res = ret.Get(0).(map[int64]int64)
	}
	return res, ret.Error(1)
}

func (m *LikeCounterCache) IncrLikeCount(ctx context.Context, commentID int64, delta int64) (int64, bool, error) {
	ret := m.Called(ctx, commentID, delta)
	return ret.Get(0).(int64), ret.Bool(1), ret.Error(2)
}

func (m *LikeCounterCache) SetLikeCountNX(ctx context.Context, commentID int64, value int64) (bool, error) {
	ret := m.Called(ctx, commentID, value)
	return ret.Bool(0), ret.Error(1)
}

func (m *LikeCounterCache) DeleteLikeCount(ctx context.Context, commentID int64) error {
	ret := m.Called(ctx, commentID)
	return ret.Error(0)
}

func (m *LikeCounterCache) ScanLikeKeys(ctx context.Context) ([]int64, error) {
	ret := m.Called(ctx)
	var ids []int64
	if ret.Get(0) != nil {
		ids = ret.Get(0).([]int64)
	}
	return ids, ret.Error(1)
}

var _ domain.LikeCounterCache = (*LikeCounterCache)(nil)

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"board-backend/domain"
)

// CommentRepository is a mock type for the domain.CommentRepository
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	ret := m.Called(ctx, c)
	return ret.Error(0)
}

func (m *CommentRepository) Delete(ctx context.Context, commentID int64, userID int64) error {
	ret := m.Called(ctx, commentID, userID)
	return ret.Error(0)
}

func (m *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	ret := m.Called(ctx, id)
	var res *domain.Comment
	if ret.Get(0) != nil {
		res = ret.Get(0).(*domain.Comment)
	}
	return res, ret.Error(1)
}

func (m *CommentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	ret := m.Called(ctx, id)
	return ret.Bool(0), ret.Error(1)
}

func (m *CommentRepository) FetchRoots(ctx context.Context, postID int64, cursor string, limit int64) ([]*domain.Comment, error) {
	ret := m.Called(ctx, postID, cursor, limit)
	var res []*domain.Comment
	if ret.Get(0) != nil {
		res = ret.Get(0).([]*domain.Comment)
	}
	return res, ret.Error(1)
}

func (m *CommentRepository) FetchReplies(ctx context.Context, rootIDs []int64) ([]*domain.Comment, error) {
	ret := m.Called(ctx, rootIDs)
	var res []*domain.Comment
	if ret.Get(0) != nil {
		res = ret.Get(0).([]*domain.Comment)
	}
	return res, ret.Error(1)
}

func (m *CommentRepository) SetLikeCount(ctx context.Context, id int64, likes int64) error {
	ret := m.Called(ctx, id, likes)
	return ret.Error(0)
}

func (m *CommentRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	ret := m.Called(ctx, cursor, limit)
	var ids []int64
	if ret.Get(0) != nil {
		ids = ret.Get(0).([]int64)
	}
	return ids, ret.Error(1)
}

var _ domain.CommentRepository = (*CommentRepository)(nil)

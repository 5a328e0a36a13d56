package comment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"board-backend/domain"
	"board-backend/domain/mocks"
)

func mockComment(id, postID, userID int64) *domain.Comment {
	return &domain.Comment{
		ID:        id,
		PostID:    postID,
		UserID:    userID,
		Content:   faker.Sentence(),
		Likes:     0,
		CreatedAt: time.Now(),
	}
}

func TestCreate(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	likeRepo := new(mocks.LikeRepository)
	counter := new(mocks.LikeCounterCache)
	userRepo := new(mocks.UserRepository)
	bloomRepo := new(mocks.BloomRepository)

	c := mockComment(0, 1, 2)
	commentRepo.On("Store", mock.Anything, c).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Comment).ID = 10
	}).Return(nil)
	bloomRepo.On("Add", mock.Anything, int64(10)).Return(nil)

	svc := NewService(commentRepo, likeRepo, counter, userRepo, bloomRepo)
	err := svc.Create(context.Background(), c)
	require.NoError(t, err)
	bloomRepo.AssertExpectations(t)
}

func TestCreateBloomFailureIsNotFatal(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	likeRepo := new(mocks.LikeRepository)
	counter := new(mocks.LikeCounterCache)
	userRepo := new(mocks.UserRepository)
	bloomRepo := new(mocks.BloomRepository)

	c := mockComment(0, 1, 2)
	commentRepo.On("Store", mock.Anything, c).Return(nil)
	bloomRepo.On("Add", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	svc := NewService(commentRepo, likeRepo, counter, userRepo, bloomRepo)
	err := svc.Create(context.Background(), c)
	assert.NoError(t, err)
}

// 删除评论连带清理点赞行和缓存计数键
func TestDeleteCleansUpLikeData(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	likeRepo := new(mocks.LikeRepository)
	counter := new(mocks.LikeCounterCache)
	userRepo := new(mocks.UserRepository)
	bloomRepo := new(mocks.BloomRepository)

	commentRepo.On("Delete", mock.Anything, int64(10), int64(2)).Return(nil)
	likeRepo.On("DeleteByComment", mock.Anything, int64(10)).Return(nil)
	counter.On("DeleteLikeCount", mock.Anything, int64(10)).Return(nil)

	svc := NewService(commentRepo, likeRepo, counter, userRepo, bloomRepo)
	err := svc.Delete(context.Background(), 10, 2)
	require.NoError(t, err)
	likeRepo.AssertExpectations(t)
	counter.AssertExpectations(t)
}

func TestDeleteForbidden(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	likeRepo := new(mocks.LikeRepository)
	counter := new(mocks.LikeCounterCache)
	userRepo := new(mocks.UserRepository)
	bloomRepo := new(mocks.BloomRepository)

	commentRepo.On("Delete", mock.Anything, int64(10), int64(3)).Return(domain.ErrForbidden)

	svc := NewService(commentRepo, likeRepo, counter, userRepo, bloomRepo)
	err := svc.Delete(context.Background(), 10, 3)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	likeRepo.AssertNotCalled(t, "DeleteByComment", mock.Anything, mock.Anything)
}

// 列表里的计数以缓存为准, 缓存没有的保留行里的值
func TestFetchByPostFillsLikeCountsAndUsers(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	likeRepo := new(mocks.LikeRepository)
	counter := new(mocks.LikeCounterCache)
	userRepo := new(mocks.UserRepository)
	bloomRepo := new(mocks.BloomRepository)

	root1 := mockComment(1, 5, 100)
	root1.Likes = 3
	root2 := mockComment(2, 5, 101)
	root2.Likes = 8
	reply := mockComment(3, 5, 100)
	reply.RootID = 1
	reply.ParentID = 1

	commentRepo.On("FetchRoots", mock.Anything, int64(5), "", int64(10)).
		Return([]*domain.Comment{root1, root2}, nil)
	commentRepo.On("FetchReplies", mock.Anything, []int64{1, 2}).
		Return([]*domain.Comment{reply}, nil)
	counter.On("MGetLikeCounts", mock.Anything, []int64{1, 2, 3}).
		Return(map[int64]int64{1: 4, 3: 1}, nil)
	userRepo.On("GetByIDs", mock.Anything, []int64{100, 101}).
		Return([]domain.User{{ID: 100, Username: "alice"}, {ID: 101, Username: "bob"}}, nil)

	svc := NewService(commentRepo, likeRepo, counter, userRepo, bloomRepo)
	res, next, err := svc.FetchByPost(context.Background(), 5, "", 10)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.NotEmpty(t, next)

	// 缓存值覆盖行值
	assert.Equal(t, int64(4), res[0].Likes)
	// 缓存里没有, 保留行值
	assert.Equal(t, int64(8), res[1].Likes)

	require.Len(t, res[0].Replies, 1)
	assert.Equal(t, int64(1), res[0].Replies[0].Likes)
	assert.Empty(t, res[1].Replies)

	require.NotNil(t, res[0].User)
	assert.Equal(t, "alice", res[0].User.Username)
	require.NotNil(t, res[1].User)
	assert.Equal(t, "bob", res[1].User.Username)
}

func TestFetchByPostEmpty(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	likeRepo := new(mocks.LikeRepository)
	counter := new(mocks.LikeCounterCache)
	userRepo := new(mocks.UserRepository)
	bloomRepo := new(mocks.BloomRepository)

	commentRepo.On("FetchRoots", mock.Anything, int64(5), "", int64(10)).
		Return([]*domain.Comment{}, nil)

	svc := NewService(commentRepo, likeRepo, counter, userRepo, bloomRepo)
	res, next, err := svc.FetchByPost(context.Background(), 5, "", 10)
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.Empty(t, next)
	counter.AssertNotCalled(t, "MGetLikeCounts", mock.Anything, mock.Anything)
}

// 批量读计数失败只降级, 列表照常返回持久化值
func TestFetchByPostCacheFailureFallsBackToRows(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	likeRepo := new(mocks.LikeRepository)
	counter := new(mocks.LikeCounterCache)
	userRepo := new(mocks.UserRepository)
	bloomRepo := new(mocks.BloomRepository)

	root := mockComment(1, 5, 100)
	root.Likes = 6

	commentRepo.On("FetchRoots", mock.Anything, int64(5), "", int64(10)).
		Return([]*domain.Comment{root}, nil)
	commentRepo.On("FetchReplies", mock.Anything, []int64{1}).
		Return([]*domain.Comment{}, nil)
	counter.On("MGetLikeCounts", mock.Anything, []int64{1}).
		Return(map[int64]int64(nil), errors.New("connection refused"))
	userRepo.On("GetByIDs", mock.Anything, []int64{100}).
		Return([]domain.User{{ID: 100}}, nil)

	svc := NewService(commentRepo, likeRepo, counter, userRepo, bloomRepo)
	res, _, err := svc.FetchByPost(context.Background(), 5, "", 10)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, int64(6), res[0].Likes)
}

func TestInitBloomFilterPagesThroughAllIDs(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	likeRepo := new(mocks.LikeRepository)
	counter := new(mocks.LikeCounterCache)
	userRepo := new(mocks.UserRepository)
	bloomRepo := new(mocks.BloomRepository)

	firstPage := make([]int64, 1000)
	for i := range firstPage {
		firstPage[i] = int64(i + 1)
	}
	secondPage := []int64{1001, 1002}

	commentRepo.On("FetchIDs", mock.Anything, int64(0), int64(1000)).Return(firstPage, nil)
	commentRepo.On("FetchIDs", mock.Anything, int64(1000), int64(1000)).Return(secondPage, nil)
	commentRepo.On("FetchIDs", mock.Anything, int64(1002), int64(1000)).Return([]int64{}, nil)
	bloomRepo.On("BulkAdd", mock.Anything, firstPage).Return(nil)
	bloomRepo.On("BulkAdd", mock.Anything, secondPage).Return(nil)

	svc := NewService(commentRepo, likeRepo, counter, userRepo, bloomRepo)
	err := svc.InitBloomFilter(context.Background())
	require.NoError(t, err)
	bloomRepo.AssertExpectations(t)
	commentRepo.AssertExpectations(t)
}

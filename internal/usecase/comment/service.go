package comment

import (
	"context"

	"github.com/sirupsen/logrus"

	"board-backend/domain"
	"board-backend/internal/repository"
)

type service struct {
	commentRepo domain.CommentRepository
	likeRepo    domain.LikeRepository
	counter     domain.LikeCounterCache
	userRepo    domain.UserRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(
	commentRepo domain.CommentRepository,
	likeRepo domain.LikeRepository,
	counter domain.LikeCounterCache,
	userRepo domain.UserRepository,
	bloomRepo domain.BloomRepository,
) *service {
	return &service{
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		counter:     counter,
		userRepo:    userRepo,
		bloomRepo:   bloomRepo,
	}
}

func (s *service) Create(ctx context.Context, c *domain.Comment) error {
	if err := s.commentRepo.Store(ctx, c); err != nil {
		return err
	}

	if err := s.bloomRepo.Add(ctx, c.ID); err != nil {
		logrus.Warnf("failed to add comment %d to bloom filter: %v", c.ID, err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, commentID int64, userID int64) error {
	if err := s.commentRepo.Delete(ctx, commentID, userID); err != nil {
		return err
	}

	// 清理点赞数据; 失败只记日志, 评论本身已经删掉了
	if err := s.likeRepo.DeleteByComment(ctx, commentID); err != nil {
		logrus.Warnf("failed to delete like records of comment %d: %v", commentID, err)
	}
	if err := s.counter.DeleteLikeCount(ctx, commentID); err != nil {
		logrus.Warnf("failed to delete like counter of comment %d: %v", commentID, err)
	}
	return nil
}

func (s *service) FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]*domain.Comment, string, error) {
	res, err := s.commentRepo.FetchRoots(ctx, postID, cursor, limit)
	if err != nil {
		return []*domain.Comment{}, "", err
	}
	if len(res) == 0 {
		return []*domain.Comment{}, "", nil
	}

	rootIDs := make([]int64, len(res))
	for i, comment := range res {
		rootIDs[i] = comment.ID
	}

	replies, err := s.commentRepo.FetchReplies(ctx, rootIDs)
	if err != nil {
		logrus.Warnf("failed to fetch replies: %v", err)
		replies = nil
	}

	replyMap := make(map[int64][]*domain.Comment)
	for _, r := range replies {
		replyMap[r.RootID] = append(replyMap[r.RootID], r)
	}

	for _, r := range res {
		if list, ok := replyMap[r.ID]; ok {
			r.Replies = list
		} else {
			r.Replies = []*domain.Comment{}
		}
	}

	all := make([]*domain.Comment, 0, len(res)+len(replies))
	all = append(all, res...)
	all = append(all, replies...)

	s.fillLikeCounts(ctx, all)
	s.fillUserDetails(ctx, all)

	return res, repository.EncodeCursor(res[len(res)-1].CreatedAt), nil
}

// fillLikeCounts 用缓存中的实时计数覆盖行里的持久化计数
// 缓存里没有的评论保留持久化值 (最多落后一个同步周期)
func (s *service) fillLikeCounts(ctx context.Context, comments []*domain.Comment) {
	ids := make([]int64, len(comments))
	for i, c := range comments {
		ids[i] = c.ID
	}

	counts, err := s.counter.MGetLikeCounts(ctx, ids)
	if err != nil {
		logrus.Warnf("failed to batch read like counts: %v", err)
		return
	}
	for _, c := range comments {
		if v, ok := counts[c.ID]; ok {
			c.Likes = v
		}
	}
}

func (s *service) fillUserDetails(ctx context.Context, comments []*domain.Comment) {
	userIDs := make([]int64, 0, len(comments))
	seen := make(map[int64]bool)
	for _, c := range comments {
		if !seen[c.UserID] {
			userIDs = append(userIDs, c.UserID)
			seen[c.UserID] = true
		}
	}

	users, err := s.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		logrus.Warnf("failed to fill user details: %v", err)
		return
	}

	userMap := make(map[int64]domain.User)
	for _, u := range users {
		userMap[u.ID] = u
	}

	for _, c := range comments {
		if u, ok := userMap[c.UserID]; ok {
			user := u
			c.User = &user
		}
	}
}

// InitBloomFilter 启动时把现有评论ID全量灌入布隆过滤器
func (s *service) InitBloomFilter(ctx context.Context) error {
	const batchSize = 1000
	var cursor int64 = 0
	for {
		ids, err := s.commentRepo.FetchIDs(ctx, cursor, batchSize)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := s.bloomRepo.BulkAdd(ctx, ids); err != nil {
			return err
		}
		cursor = ids[len(ids)-1]
	}
}

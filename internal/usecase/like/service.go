package like

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"board-backend/domain"
)

// service 点赞服务
//
// 写入顺序是固定的: 先写持久层的点赞关系, 成功之后再调整缓存计数。
// 点赞表是唯一的事实来源, 缓存出任何问题都可以从它重建,
// 所以缓存侧的失败只记日志降级, 不会让已经落库的变更回滚。
type service struct {
	likeRepo    domain.LikeRepository
	commentRepo domain.CommentRepository
	userRepo    domain.UserRepository
	counter     domain.LikeCounterCache
	bloomRepo   domain.BloomRepository

	rebuildGroup singleflight.Group
}

var _ domain.LikeUsecase = (*service)(nil)

func NewService(
	likeRepo domain.LikeRepository,
	commentRepo domain.CommentRepository,
	userRepo domain.UserRepository,
	counter domain.LikeCounterCache,
	bloomRepo domain.BloomRepository,
) *service {
	return &service{
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		counter:     counter,
		bloomRepo:   bloomRepo,
	}
}

func (s *service) mustExist(ctx context.Context, commentID int64) error {
	exists, err := s.bloomRepo.Exists(ctx, commentID)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says comment %d does not exist", commentID)
		return domain.ErrNotFound
	}

	// 布隆过滤器有误判率, 通过之后还要用数据库确认
	exists, err = s.commentRepo.Exists(ctx, commentID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return nil
}

func (s *service) Toggle(ctx context.Context, commentID, userID int64) (domain.LikeResult, error) {
	if err := s.mustExist(ctx, commentID); err != nil {
		return domain.LikeResult{}, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return domain.LikeResult{}, err
	}

	liked, err := s.likeRepo.IsLiked(ctx, commentID, userID)
	if err != nil {
		return domain.LikeResult{}, err
	}

	if !liked {
		err := s.likeRepo.Insert(ctx, domain.CommentLike{
			CommentID: commentID,
			UserID:    userID,
			CreatedAt: time.Now(),
		})
		if errors.Is(err, domain.ErrConflict) {
			// 并发的重复点赞输掉了竞争: 赢家已经写入并加一,
			// 这里直接采用写入后的状态, 不再动计数
			return domain.LikeResult{Liked: true, Count: s.bestKnownCount(ctx, commentID)}, nil
		}
		if err != nil {
			return domain.LikeResult{}, err
		}
		return domain.LikeResult{Liked: true, Count: s.adjustCounter(ctx, commentID, 1)}, nil
	}

	err = s.likeRepo.Delete(ctx, commentID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		// 行已经被并发的取消点赞删掉了
		return domain.LikeResult{Liked: false, Count: s.bestKnownCount(ctx, commentID)}, nil
	}
	if err != nil {
		return domain.LikeResult{}, err
	}
	return domain.LikeResult{Liked: false, Count: s.adjustCounter(ctx, commentID, -1)}, nil
}

// adjustCounter 在点赞关系落库之后调整缓存计数
// 缓存键不存在时先从点赞表重建 (重建出的计数已经包含本次变更);
// 任何缓存侧失败都只降级为日志, 由后台同步任务兜底
func (s *service) adjustCounter(ctx context.Context, commentID int64, delta int64) int64 {
	val, clamped, err := s.counter.IncrLikeCount(ctx, commentID, delta)
	if err == nil {
		if clamped {
			logrus.Warnf("like count of comment %d would go negative, clamped to 0", commentID)
		}
		return val
	}

	if errors.Is(err, domain.ErrCacheMiss) {
		if n, rebuildErr := s.rebuildCount(ctx, commentID); rebuildErr == nil {
			return n
		} else {
			err = rebuildErr
		}
	}

	logrus.Warnf("like counter cache desync for comment %d: %v", commentID, err)
	return s.bestKnownCount(ctx, commentID)
}

// rebuildCount 从点赞表重数并用 SETNX 写回缓存
// singleflight 保证同一条评论的并发重建只打一次数据库;
// SETNX 保证不会覆盖重建窗口里别人已经建好的计数
func (s *service) rebuildCount(ctx context.Context, commentID int64) (int64, error) {
	key := strconv.FormatInt(commentID, 10)
	val, err, _ := s.rebuildGroup.Do(key, func() (any, error) {
		n, err := s.likeRepo.CountByComment(ctx, commentID)
		if err != nil {
			return nil, err
		}
		if _, err := s.counter.SetLikeCountNX(ctx, commentID, n); err != nil {
			return nil, err
		}
		// NX 输了说明键已经存在, 再读一次拿到最新值
		if cur, err := s.counter.GetLikeCount(ctx, commentID); err == nil {
			return cur, nil
		}
		return n, nil
	})
	if err != nil {
		return 0, err
	}
	return val.(int64), nil
}

// bestKnownCount 当前能拿到的最好的计数: 缓存值, 其次持久化值, 最后 0
func (s *service) bestKnownCount(ctx context.Context, commentID int64) int64 {
	if val, err := s.counter.GetLikeCount(ctx, commentID); err == nil {
		return val
	}
	if comment, err := s.commentRepo.GetByID(ctx, commentID); err == nil {
		return comment.Likes
	}
	return 0
}

func (s *service) GetLikeCount(ctx context.Context, commentID int64) (int64, error) {
	val, err := s.counter.GetLikeCount(ctx, commentID)
	if err == nil {
		return val, nil
	}

	if errors.Is(err, domain.ErrCacheMiss) {
		// 冷缓存: 同步触发一次恢复, 恢复出的就是精确计数
		if n, rebuildErr := s.rebuildCount(ctx, commentID); rebuildErr == nil {
			return n, nil
		}
	} else {
		logrus.Warnf("failed to read like count of comment %d from cache: %v", commentID, err)
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return comment.Likes, nil
}

func (s *service) IsLikedBy(ctx context.Context, commentID, userID int64) (bool, error) {
	return s.likeRepo.IsLiked(ctx, commentID, userID)
}

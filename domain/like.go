package domain

import (
	"context"
	"time"
)

// CommentLike is representing a like record: one user's like on one comment.
// The (CommentID, UserID) pair is unique in storage, so a user can hold at
// most one like per comment no matter how requests interleave.
type CommentLike struct {
	CommentID int64
	UserID    int64
	CreatedAt time.Time
}

// LikeResult 点赞操作的结果: 本次操作后的点赞状态和当前最佳已知计数
type LikeResult struct {
	Liked bool  `json:"liked"`
	Count int64 `json:"count"`
}

// LikeRepository 点赞关系的持久层接口, 以数据库中的唯一约束为准
type LikeRepository interface {
	// Insert stores a like record.
	// Returns ErrConflict if the (comment, user) pair already exists.
	Insert(ctx context.Context, like CommentLike) error

	// Delete removes a like record.
	// Returns ErrNotFound if no such record exists.
	Delete(ctx context.Context, commentID, userID int64) error

	// IsLiked reports whether the user currently likes the comment.
	IsLiked(ctx context.Context, commentID, userID int64) (bool, error)

	// CountByComment 统计某条评论当前的点赞行数, 用于缓存重建
	CountByComment(ctx context.Context, commentID int64) (int64, error)

	// DeleteByComment removes all like records of a comment.
	DeleteByComment(ctx context.Context, commentID int64) error
}

// LikeCounterCache 点赞计数缓存接口
//
// 计数键是易失的: 缓存重启后全部丢失, 调用方必须能容忍缓存整体为空,
// 并通过 SetLikeCountNX 从持久层重建。
type LikeCounterCache interface {
	// GetLikeCount returns the cached count for a comment.
	// Returns ErrCacheMiss if no key exists.
	GetLikeCount(ctx context.Context, commentID int64) (int64, error)

	// MGetLikeCounts 批量读取点赞计数, 缺失的键不会出现在结果中
	MGetLikeCounts(ctx context.Context, commentIDs []int64) (map[int64]int64, error)

	// IncrLikeCount atomically adjusts the cached count by delta.
	// The adjustment only applies to an existing key; ErrCacheMiss is
	// returned otherwise so the caller can rebuild first.
	// A negative delta never drives the value below zero: the value is
	// clamped at 0 and clamped=true is reported.
	IncrLikeCount(ctx context.Context, commentID int64, delta int64) (value int64, clamped bool, err error)

	// SetLikeCountNX writes the count only when no key exists yet.
	// 只用于重建, 避免覆盖重建期间累积的增减
	SetLikeCountNX(ctx context.Context, commentID int64, value int64) (bool, error)

	// DeleteLikeCount removes the cached count.
	DeleteLikeCount(ctx context.Context, commentID int64) error

	// ScanLikeKeys 枚举当前所有点赞计数键对应的评论ID, 只供后台同步任务使用
	ScanLikeKeys(ctx context.Context) ([]int64, error)
}

// LikeUsecase 业务逻辑接口
type LikeUsecase interface {
	// Toggle flips the user's like state on a comment.
	// Returns ErrNotFound if the comment does not exist and ErrUserNotFound
	// if the user does not exist.
	Toggle(ctx context.Context, commentID, userID int64) (LikeResult, error)

	// GetLikeCount returns the cache value if present, else the durable
	// count stored on the comment row, else 0.
	GetLikeCount(ctx context.Context, commentID int64) (int64, error)

	// IsLikedBy reports the user's like state straight from storage.
	IsLikedBy(ctx context.Context, commentID, userID int64) (bool, error)
}

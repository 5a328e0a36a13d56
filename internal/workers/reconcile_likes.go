package workers

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"board-backend/domain"
)

const shutdownSweepTimeout = 10 * time.Second

// LikeReconciler 周期性地把缓存里的点赞计数快照写回评论表的 likes 列
//
// 单协程运行, 两次扫描永远不会重叠。对缓存只读不写:
// 不清零也不删除键, 期间到达的点赞继续累加在同一个值上,
// 所以每一轮写入的都是写入时刻的缓存现值, 天然幂等。
type LikeReconciler struct {
	counter     domain.LikeCounterCache
	likeRepo    domain.LikeRepository
	commentRepo domain.CommentRepository
	interval    time.Duration
}

func NewLikeReconciler(
	counter domain.LikeCounterCache,
	likeRepo domain.LikeRepository,
	commentRepo domain.CommentRepository,
	interval time.Duration,
) *LikeReconciler {
	return &LikeReconciler{
		counter:     counter,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
		interval:    interval,
	}
}

func (r *LikeReconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.sweep(ctx)
		case <-ctx.Done():
			logrus.Info("shutting down LikeReconciler, running final sweep...")
			flushCtx, cancel := context.WithTimeout(context.Background(), shutdownSweepTimeout)
			r.sweep(flushCtx)
			cancel()
			return
		}
	}
}

// sweep 一轮同步: 枚举所有活跃计数键, 逐个读出缓存现值写入持久层
// 缓存整体不可用 ⇒ 本轮整体跳过, 下个周期重试;
// 单条评论失败 ⇒ 跳过该条继续扫, 同样下个周期重试
func (r *LikeReconciler) sweep(ctx context.Context) {
	ids, err := r.counter.ScanLikeKeys(ctx)
	if err != nil {
		logrus.Errorf("like counter cache unreachable, skipping reconciliation pass: %v", err)
		return
	}

	var flushed, skipped int
	for _, id := range ids {
		val, err := r.counter.GetLikeCount(ctx, id)
		if err != nil {
			// 键在枚举和读取之间消失了 (比如缓存重启), 留给恢复路径处理
			if !errors.Is(err, domain.ErrCacheMiss) {
				logrus.Warnf("failed to read like count of comment %d: %v", id, err)
			}
			skipped++
			continue
		}

		if err := r.commentRepo.SetLikeCount(ctx, id, val); err != nil {
			logrus.Warnf("failed to flush like count of comment %d: %v", id, err)
			skipped++
			continue
		}
		flushed++
	}

	if flushed > 0 || skipped > 0 {
		logrus.Infof("like reconciliation pass done, flushed: %d, skipped: %d", flushed, skipped)
	}
}

// Rebuild 从点赞表重数并写入缓存, 用于缓存冷启动后的恢复
// SETNX 语义: 已有键绝不覆盖, 避免抹掉上次落盘之后累积的增减
func (r *LikeReconciler) Rebuild(ctx context.Context, commentID int64) error {
	n, err := r.likeRepo.CountByComment(ctx, commentID)
	if err != nil {
		return err
	}
	_, err = r.counter.SetLikeCountNX(ctx, commentID, n)
	return err
}

package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"board-backend/domain"
)

const (
	KeyLikeCount       = "comment:likes:%d"
	KeyLikeCountPrefix = "comment:likes:"

	scanBatchSize = 200
)

// incrLikeScript 原子调整点赞计数
// 只在键存在时生效, 避免冷缓存下凭空造出一个错误的计数;
// 负增量永远不会把计数减到 0 以下
// 返回: >=0 新值; -1 键不存在; -2 发生了钳制
var incrLikeScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 0 then
		return -1
	end
	local v = redis.call('INCRBY', KEYS[1], ARGV[1])
	if v < 0 then
		redis.call('SET', KEYS[1], 0)
		return -2
	end
	return v
`)

type likeCounterCache struct {
	client *redis.Client
}

var _ domain.LikeCounterCache = (*likeCounterCache)(nil)

func NewLikeCounterCache(client *redis.Client) *likeCounterCache {
	return &likeCounterCache{
		client,
	}
}

func (c *likeCounterCache) GetLikeCount(ctx context.Context, commentID int64) (int64, error) {
	key := fmt.Sprintf(KeyLikeCount, commentID)
	val, err := c.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, domain.ErrCacheMiss
	}
	if err != nil {
		return 0, err
	}
	return val, nil
}

func (c *likeCounterCache) MGetLikeCounts(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	if len(commentIDs) == 0 {
		return nil, nil
	}
	keys := make([]string, len(commentIDs))
	for i, id := range commentIDs {
		keys[i] = fmt.Sprintf(KeyLikeCount, id)
	}

	result, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	res := make(map[int64]int64)
	for i, val := range result {
		if val == nil {
			continue
		}
		valStr, ok := val.(string)
		if !ok {
			logrus.Errorf("invalid type in redis for like count, id: %d, val: %v", commentIDs[i], val)
			continue
		}
		likes, err := strconv.ParseInt(valStr, 10, 64)
		if err != nil {
			logrus.Errorf("failed to strconv.ParseInt in redis, id: %d, err: %v", commentIDs[i], err)
			continue
		}
		res[commentIDs[i]] = likes
	}
	return res, nil
}

func (c *likeCounterCache) IncrLikeCount(ctx context.Context, commentID int64, delta int64) (int64, bool, error) {
	key := fmt.Sprintf(KeyLikeCount, commentID)
	res, err := incrLikeScript.Run(ctx, c.client, []string{key}, delta).Int64()
	if err != nil {
		return 0, false, err
	}
	switch res {
	case -1:
		return 0, false, domain.ErrCacheMiss
	case -2:
		return 0, true, nil
	default:
		return res, false, nil
	}
}

func (c *likeCounterCache) SetLikeCountNX(ctx context.Context, commentID int64, value int64) (bool, error) {
	key := fmt.Sprintf(KeyLikeCount, commentID)
	return c.client.SetNX(ctx, key, value, 0).Result()
}

func (c *likeCounterCache) DeleteLikeCount(ctx context.Context, commentID int64) error {
	key := fmt.Sprintf(KeyLikeCount, commentID)
	return c.client.Del(ctx, key).Err()
}

// ScanLikeKeys 按前缀遍历所有点赞计数键, 返回对应的评论ID
// 只供后台同步任务调用, 请求路径不应该全量扫描
func (c *likeCounterCache) ScanLikeKeys(ctx context.Context) ([]int64, error) {
	var (
		ids    []int64
		cursor uint64
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, KeyLikeCountPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			idStr := strings.TrimPrefix(key, KeyLikeCountPrefix)
			id, err := strconv.ParseInt(idStr, 10, 64)
			if err != nil {
				logrus.Warnf("skip malformed like count key: %s", key)
				continue
			}
			ids = append(ids, id)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return ids, nil
}

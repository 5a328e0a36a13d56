package domain

import (
	"context"
	"time"
)

// Comment domain model. 评论是本系统中可被点赞的实体
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	ParentID  int64     `json:"parent_id"`
	RootID    int64     `json:"root_id"`
	Likes     int64     `json:"likes"`
	CreatedAt time.Time `json:"created_at"`

	// User 评论作者信息
	User *User `json:"user,omitempty"`
	// Replies 子评论列表
	Replies []*Comment `json:"replies,omitempty"`
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	Create(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, commentID int64, userID int64) error
	FetchByPost(ctx context.Context, postID int64, cursor string, limit int64) ([]*Comment, string, error)
	// InitBloomFilter 启动时把现有评论ID灌入布隆过滤器
	InitBloomFilter(ctx context.Context) error
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, commentID int64, userID int64) error
	GetByID(ctx context.Context, id int64) (*Comment, error)
	// Exists reports whether the comment row exists.
	Exists(ctx context.Context, id int64) (bool, error)
	// FetchRoots 获取一级评论
	FetchRoots(ctx context.Context, postID int64, cursor string, limit int64) ([]*Comment, error)
	// FetchReplies 获取指定根评论ID列表的所有子回复
	FetchReplies(ctx context.Context, rootIDs []int64) ([]*Comment, error)
	// SetLikeCount overwrites the durable likes column.
	// 只有后台同步任务会写这一列, 请求路径永远不直接改它
	SetLikeCount(ctx context.Context, id int64, likes int64) error
	// FetchIDs 按ID游标分页获取评论ID
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

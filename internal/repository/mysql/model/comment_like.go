package model

import (
	"time"

	"board-backend/domain"
)

// CommentLike 点赞记录, 复合主键保证同一用户对同一评论至多一行
type CommentLike struct {
	CommentID int64     `gorm:"column:comment_id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;primaryKey"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

func NewCommentLikeFromDomain(cl domain.CommentLike) CommentLike {
	return CommentLike{
		CommentID: cl.CommentID,
		UserID:    cl.UserID,
		CreatedAt: cl.CreatedAt,
	}
}

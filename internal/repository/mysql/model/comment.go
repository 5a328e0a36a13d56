package model

import (
	"time"

	"board-backend/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	PostID    int64     `gorm:"column:post_id;not null"`
	UserID    int64     `gorm:"column:user_id;not null"`
	Content   string    `gorm:"type:text;not null"`
	ParentID  int64     `gorm:"column:parent_id;default:0"`
	RootID    int64     `gorm:"column:root_id;default:0"`
	Likes     int64     `gorm:"default:0"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		RootID:    c.RootID,
		Likes:     c.Likes,
		CreatedAt: c.CreatedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		Content:   m.Content,
		ParentID:  m.ParentID,
		RootID:    m.RootID,
		Likes:     m.Likes,
		CreatedAt: m.CreatedAt,
	}
}

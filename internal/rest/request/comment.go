package request

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"board-backend/domain"
)

type Comment struct {
	PostID   int64  `json:"post_id"`
	UserID   int64  `json:"user_id"`
	Content  string `json:"content" binding:"required,notblank,max=2000"`
	ParentID int64  `json:"parent_id"`
	RootID   int64  `json:"root_id"`
}

// NotBlank 拒绝全是空白字符的内容, 注册到 gin 的 binding 引擎上
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		PostID:   r.PostID,
		UserID:   r.UserID,
		Content:  r.Content,
		ParentID: r.ParentID,
		RootID:   r.RootID,
	}
}

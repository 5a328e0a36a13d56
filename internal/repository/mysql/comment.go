package mysql

import (
	"context"

	"board-backend/domain"
	"board-backend/internal/repository"
	"board-backend/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type commentRepository struct {
	DB *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	err := c.DB.WithContext(ctx).Create(commentModel).Error
	if err != nil {
		return err
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	return nil
}

func (c *commentRepository) Delete(ctx context.Context, commentID int64, userID int64) error {
	result := c.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", commentID, userID).
		Delete(&model.Comment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrForbidden
	}
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ?", id).Error
	if err != nil {
		return nil, domain.ErrNotFound
	}
	domainComment := comment.ToDomain()
	return &domainComment, nil
}

func (c *commentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (c *commentRepository) FetchRoots(ctx context.Context, postID int64, cursor string, limit int64) ([]*domain.Comment, error) {
	var comments []model.Comment
	decodedCursor, err := repository.DecodeCursor(cursor)
	if err != nil && cursor != "" {
		return nil, domain.ErrBadParamInput
	}
	err = c.DB.WithContext(ctx).
		Where("post_id = ? AND parent_id = 0 AND created_at > ?", postID, decodedCursor).
		Limit(int(limit)).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	var res []*domain.Comment
	for _, comment := range comments {
		domainComment := comment.ToDomain()
		res = append(res, &domainComment)
	}
	return res, nil
}

func (c *commentRepository) FetchReplies(ctx context.Context, rootIDs []int64) ([]*domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("root_id IN ?", rootIDs).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	var res []*domain.Comment
	for _, comment := range comments {
		domainComment := comment.ToDomain()
		res = append(res, &domainComment)
	}
	return res, nil
}

// SetLikeCount 用缓存中的快照覆盖持久化的点赞数
func (c *commentRepository) SetLikeCount(ctx context.Context, id int64, likes int64) error {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		UpdateColumn("likes", likes)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}

var _ domain.CommentRepository = (*commentRepository)(nil)

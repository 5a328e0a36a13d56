package mysql

import (
	"context"
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"board-backend/domain"
	"board-backend/internal/repository/mysql/model"
)

// likeRepository 点赞关系的持久层, comment_likes 表的唯一写入方是点赞服务
type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{
		DB: db,
	}
}

// isDuplicateKey 识别复合主键冲突 (并发的重复点赞请求输掉了竞争)
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysqldriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == 1062
}

func (l *likeRepository) Insert(ctx context.Context, like domain.CommentLike) error {
	likeModel := model.NewCommentLikeFromDomain(like)
	err := l.DB.WithContext(ctx).Create(&likeModel).Error
	if err != nil {
		if isDuplicateKey(err) {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (l *likeRepository) Delete(ctx context.Context, commentID, userID int64) error {
	result := l.DB.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&model.CommentLike{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (l *likeRepository) IsLiked(ctx context.Context, commentID, userID int64) (bool, error) {
	var count int64
	err := l.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (l *likeRepository) CountByComment(ctx context.Context, commentID int64) (int64, error) {
	var count int64
	err := l.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}

func (l *likeRepository) DeleteByComment(ctx context.Context, commentID int64) error {
	return l.DB.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Delete(&model.CommentLike{}).Error
}

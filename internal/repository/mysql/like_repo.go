package mysql

import (
	"context"

	"Simple_Twitter/internal/model"

	"gorm.io/gorm"
)

type LikeRepository struct {
	DB *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{DB: db}
}

func (r *LikeRepository) Create(ctx context.Context, like *model.Like) error {
	return r.DB.WithContext(ctx).Create(like).Error
}

// Find 按 (user, tweet) 对查点赞记录，没有时返回 gorm.ErrRecordNotFound
func (r *LikeRepository) Find(ctx context.Context, userID, tweetID uint64) (*model.Like, error) {
	var like model.Like
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		First(&like).Error
	return &like, err
}

func (r *LikeRepository) Exists(ctx context.Context, userID, tweetID uint64) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Count(&n).Error
	return n > 0, err
}

func (r *LikeRepository) Delete(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Delete(&model.Like{}, id).Error
}

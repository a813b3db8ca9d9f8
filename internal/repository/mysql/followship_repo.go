package mysql

import (
	"context"

	"Simple_Twitter/internal/model"

	"gorm.io/gorm"
)

type FollowshipRepository struct {
	DB *gorm.DB
}

func NewFollowshipRepository(db *gorm.DB) *FollowshipRepository {
	return &FollowshipRepository{DB: db}
}

func (r *FollowshipRepository) Create(ctx context.Context, f *model.Followship) error {
	return r.DB.WithContext(ctx).Create(f).Error
}

// FindEdge 按有向对查边，没有时返回 gorm.ErrRecordNotFound
func (r *FollowshipRepository) FindEdge(ctx context.Context, followerID, followingID uint64) (*model.Followship, error) {
	var f model.Followship
	err := r.DB.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&f).Error
	return &f, err
}

func (r *FollowshipRepository) Exists(ctx context.Context, followerID, followingID uint64) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Followship{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&n).Error
	return n > 0, err
}

func (r *FollowshipRepository) Delete(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Delete(&model.Followship{}, id).Error
}

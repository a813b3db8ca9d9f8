package mysql

import (
	"context"

	"Simple_Twitter/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByAccount(ctx context.Context, account string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("account = ?", account).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, user *model.User, newPassword string) error {
	return r.DB.WithContext(ctx).Model(user).Update("password", newPassword).Error
}

// TopUsers 排行榜查询。follower_count / is_following 用子查询算出，
// viewerID 走参数绑定，排序先按粉丝数再按建号时间，新号在前。
func (r *UserRepository) TopUsers(ctx context.Context, viewerID uint64, limit int) ([]model.RankedUser, error) {
	followerCount := r.DB.Model(&model.Followship{}).
		Select("COUNT(*)").
		Where("followships.following_id = users.id")
	isFollowing := r.DB.Model(&model.Followship{}).
		Select("COUNT(*) > 0").
		Where("followships.follower_id = ? AND followships.following_id = users.id", viewerID)

	var rows []model.RankedUser
	err := r.DB.WithContext(ctx).Model(&model.User{}).
		Select("users.id, users.account, users.name, users.avatar, users.role, users.created_at, (?) AS follower_count, (?) AS is_following",
			followerCount, isFollowing).
		Order("follower_count DESC, users.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

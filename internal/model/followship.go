package model

import "time"

// Followship 有向关注边：follower 关注 following。
// (follower_id, following_id) 唯一，只有存在/不存在两种状态，没有软删除。
type Followship struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	FollowerID  uint64    `gorm:"not null;uniqueIndex:idx_follower_following" json:"followerId"`
	FollowingID uint64    `gorm:"not null;uniqueIndex:idx_follower_following;index:idx_following" json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`
}

func (Followship) TableName() string {
	return "followships"
}

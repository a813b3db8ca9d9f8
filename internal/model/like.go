package model

import "time"

// Like 用户与推文之间的多对多连接记录，(user_id, tweet_id) 唯一。
type Like struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_user_tweet" json:"UserId"`
	TweetID   uint64    `gorm:"not null;uniqueIndex:idx_user_tweet;index:idx_like_tweet" json:"TweetId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

func (Like) TableName() string {
	return "likes"
}

package model

import "time"

// MaxTweetLength 推文长度上限，按字符（rune）计，不是字节。
const MaxTweetLength = 140

type Tweet struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	UserID      uint64    `gorm:"not null;index:idx_tweet_author" json:"UserId"`
	Description string    `gorm:"size:560;not null" json:"description"`
	CreatedAt   time.Time `gorm:"index:idx_tweet_created" json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`
}

func (Tweet) TableName() string {
	return "tweets"
}

package model

import "time"

type Reply struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	TweetID   uint64    `gorm:"not null;index:idx_reply_tweet" json:"TweetId"`
	UserID    uint64    `gorm:"not null" json:"UserId"`
	Comment   string    `gorm:"type:text;not null" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

func (Reply) TableName() string {
	return "replies"
}

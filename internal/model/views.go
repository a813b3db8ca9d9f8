package model

import "time"

// 每个读操作一个固定的视图结构，字段静态声明，
// 取代原先运行时拼接 attributes 的做法。

// UserProfile 推文/回复里带出的作者简要信息
type UserProfile struct {
	ID      uint64 `json:"id"`
	Account string `json:"account"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
}

// RankedUser 排行榜视图，follower_count / is_following 由子查询算出
type RankedUser struct {
	ID            uint64    `json:"id"`
	Account       string    `json:"account"`
	Name          string    `json:"name"`
	Avatar        string    `json:"avatar"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
	FollowerCount int64     `json:"followerCount"`
	IsFollowing   bool      `json:"isFollowing"`
}

// TweetView 推文列表视图：作者 + 回复数/点赞数/当前用户是否点赞
type TweetView struct {
	ID           uint64      `json:"id"`
	UserID       uint64      `json:"UserId"`
	Description  string      `json:"description"`
	CreatedAt    time.Time   `json:"createdAt"`
	User         UserProfile `json:"User"`
	ReplyCount   int64       `json:"replyCount"`
	LikeCount    int64       `json:"likeCount"`
	IsLiked      bool        `json:"isLiked"`
	RelativeTime string      `json:"relativeTime"`
}

// TweetDetail 单则推文视图，多一个固定格式的绝对时间
type TweetDetail struct {
	TweetView
	ExactTime string `json:"exactTime"`
}

// ReplyTweetAuthor 回复所属推文作者的帐号（二级 join）
type ReplyTweetAuthor struct {
	Account string `json:"account"`
}

type ReplyTweet struct {
	UserID uint64           `json:"UserId"`
	User   ReplyTweetAuthor `json:"User"`
}

// ReplyView 回复列表视图：回复者简要信息 + 推文作者帐号
type ReplyView struct {
	ID           uint64      `json:"id"`
	TweetID      uint64      `json:"TweetId"`
	UserID       uint64      `json:"UserId"`
	Comment      string      `json:"comment"`
	CreatedAt    time.Time   `json:"createdAt"`
	User         UserProfile `json:"User"`
	Tweet        ReplyTweet  `json:"Tweet"`
	RelativeTime string      `json:"relativeTime"`
}

package mysql

import (
	"context"
	"time"

	"Simple_Twitter/internal/model"

	"gorm.io/gorm"
)

type ReplyRepository struct {
	DB *gorm.DB
}

func NewReplyRepository(db *gorm.DB) *ReplyRepository {
	return &ReplyRepository{DB: db}
}

type replyRow struct {
	ID                 uint64
	TweetID            uint64
	UserID             uint64
	Comment            string
	CreatedAt          time.Time
	ReplierID          uint64
	ReplierAccount     string
	ReplierName        string
	ReplierAvatar      string
	TweetAuthorID      uint64
	TweetAuthorAccount string
}

func (r *ReplyRepository) Create(ctx context.Context, reply *model.Reply) error {
	return r.DB.WithContext(ctx).Create(reply).Error
}

// ListByTweet 某则推文的全部回复，带回复者简要信息和推文作者帐号
// （replies → users，replies → tweets → users 两级 join），倒序。
// 没有回复时返回空切片，不报错。
func (r *ReplyRepository) ListByTweet(ctx context.Context, tweetID uint64) ([]model.ReplyView, error) {
	var rows []replyRow
	err := r.DB.WithContext(ctx).Model(&model.Reply{}).
		Select("replies.id, replies.tweet_id, replies.user_id, replies.comment, replies.created_at, "+
			"repliers.id AS replier_id, repliers.account AS replier_account, repliers.name AS replier_name, repliers.avatar AS replier_avatar, "+
			"tweets.user_id AS tweet_author_id, authors.account AS tweet_author_account").
		Joins("JOIN users AS repliers ON repliers.id = replies.user_id").
		Joins("JOIN tweets ON tweets.id = replies.tweet_id").
		Joins("JOIN users AS authors ON authors.id = tweets.user_id").
		Where("replies.tweet_id = ?", tweetID).
		Order("replies.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	views := make([]model.ReplyView, 0, len(rows))
	for _, row := range rows {
		views = append(views, model.ReplyView{
			ID:        row.ID,
			TweetID:   row.TweetID,
			UserID:    row.UserID,
			Comment:   row.Comment,
			CreatedAt: row.CreatedAt,
			User: model.UserProfile{
				ID:      row.ReplierID,
				Account: row.ReplierAccount,
				Name:    row.ReplierName,
				Avatar:  row.ReplierAvatar,
			},
			Tweet: model.ReplyTweet{
				UserID: row.TweetAuthorID,
				User:   model.ReplyTweetAuthor{Account: row.TweetAuthorAccount},
			},
		})
	}
	return views, nil
}

package mysql

import (
	"context"
	"time"

	"Simple_Twitter/internal/model"

	"gorm.io/gorm"
)

type TweetRepository struct {
	DB *gorm.DB
}

func NewTweetRepository(db *gorm.DB) *TweetRepository {
	return &TweetRepository{DB: db}
}

// tweetRow 扁平扫描行，映射成嵌套视图前的中间结构
type tweetRow struct {
	ID            uint64
	UserID        uint64
	Description   string
	CreatedAt     time.Time
	AuthorID      uint64
	AuthorAccount string
	AuthorName    string
	AuthorAvatar  string
	ReplyCount    int64
	LikeCount     int64
	IsLiked       bool
}

func (row tweetRow) toView() model.TweetView {
	return model.TweetView{
		ID:          row.ID,
		UserID:      row.UserID,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
		User: model.UserProfile{
			ID:      row.AuthorID,
			Account: row.AuthorAccount,
			Name:    row.AuthorName,
			Avatar:  row.AuthorAvatar,
		},
		ReplyCount: row.ReplyCount,
		LikeCount:  row.LikeCount,
		IsLiked:    row.IsLiked,
	}
}

func (r *TweetRepository) Create(ctx context.Context, t *model.Tweet) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *TweetRepository) FindByID(ctx context.Context, id uint64) (*model.Tweet, error) {
	var t model.Tweet
	err := r.DB.WithContext(ctx).First(&t, id).Error
	return &t, err
}

// enrichedQuery 推文 + 作者 join + 三个聚合列，viewerID 参数绑定
func (r *TweetRepository) enrichedQuery(ctx context.Context, viewerID uint64) *gorm.DB {
	replyCount := r.DB.Model(&model.Reply{}).
		Select("COUNT(*)").
		Where("replies.tweet_id = tweets.id")
	likeCount := r.DB.Model(&model.Like{}).
		Select("COUNT(*)").
		Where("likes.tweet_id = tweets.id")
	isLiked := r.DB.Model(&model.Like{}).
		Select("COUNT(*) > 0").
		Where("likes.user_id = ? AND likes.tweet_id = tweets.id", viewerID)

	return r.DB.WithContext(ctx).Model(&model.Tweet{}).
		Select("tweets.id, tweets.user_id, tweets.description, tweets.created_at, "+
			"users.id AS author_id, users.account AS author_account, users.name AS author_name, users.avatar AS author_avatar, "+
			"(?) AS reply_count, (?) AS like_count, (?) AS is_liked",
			replyCount, likeCount, isLiked).
		Joins("JOIN users ON users.id = tweets.user_id")
}

// ListEnriched 全部推文，按发文时间倒序
func (r *TweetRepository) ListEnriched(ctx context.Context, viewerID uint64) ([]model.TweetView, error) {
	var rows []tweetRow
	if err := r.enrichedQuery(ctx, viewerID).
		Order("tweets.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	views := make([]model.TweetView, 0, len(rows))
	for _, row := range rows {
		views = append(views, row.toView())
	}
	return views, nil
}

// FindEnriched 单则推文视图，没有时返回 gorm.ErrRecordNotFound
func (r *TweetRepository) FindEnriched(ctx context.Context, tweetID, viewerID uint64) (*model.TweetView, error) {
	var row tweetRow
	res := r.enrichedQuery(ctx, viewerID).
		Where("tweets.id = ?", tweetID).
		Limit(1).
		Scan(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	view := row.toView()
	return &view, nil
}

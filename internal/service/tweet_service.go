package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"Simple_Twitter/internal/model"
	"Simple_Twitter/internal/pkg"
	"Simple_Twitter/internal/repository/mysql"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type TweetService struct {
	tweets  *mysql.TweetRepository
	replies *mysql.ReplyRepository
	users   *mysql.UserRepository
	events  *EventPublisher
}

func NewTweetService(tweets *mysql.TweetRepository, replies *mysql.ReplyRepository, users *mysql.UserRepository, events *EventPublisher) *TweetService {
	return &TweetService{
		tweets:  tweets,
		replies: replies,
		users:   users,
		events:  events,
	}
}

// PostTweet 发推。内容去空白后不可为空，长度按字符数限制在 140 以内。
func (s *TweetService) PostTweet(ctx context.Context, authorID uint64, description string) (*model.Tweet, error) {
	if strings.TrimSpace(description) == "" {
		return nil, pkg.Validation("description can not be blank")
	}
	if utf8.RuneCountInString(description) > model.MaxTweetLength {
		return nil, pkg.Validation("description is limited to 140 characters")
	}

	t := &model.Tweet{UserID: authorID, Description: description}
	if err := s.tweets.Create(ctx, t); err != nil {
		return nil, err
	}
	s.events.Publish("tweet", authorID, t.ID)
	return t, nil
}

// ListTweets 全部推文的富视图，按发文时间倒序
func (s *TweetService) ListTweets(ctx context.Context, viewerID uint64) ([]model.TweetView, error) {
	views, err := s.tweets.ListEnriched(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	for i := range views {
		views[i].RelativeTime = pkg.RelativeTime(views[i].CreatedAt)
	}
	return views, nil
}

// GetTweet 单则推文富视图，多带绝对时间；不存在时错误带 404
func (s *TweetService) GetTweet(ctx context.Context, tweetID, viewerID uint64) (*model.TweetDetail, error) {
	view, err := s.tweets.FindEnriched(ctx, tweetID, viewerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.NotFoundStatus("tweet didn't exist")
	}
	if err != nil {
		return nil, err
	}
	view.RelativeTime = pkg.RelativeTime(view.CreatedAt)
	return &model.TweetDetail{
		TweetView: *view,
		ExactTime: pkg.ExactTime(view.CreatedAt),
	}, nil
}

// PostReply 回复推文。回复者和推文两个存在性检查并行发出，
// 判定顺序固定：先回复者，再推文。
func (s *TweetService) PostReply(ctx context.Context, tweetID, authorID uint64, comment string) (*model.Reply, error) {
	if strings.TrimSpace(comment) == "" {
		return nil, pkg.Validation("comment can not be blank")
	}

	var (
		author *model.User
		tweet  *model.Tweet
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.users.FindByID(gctx, authorID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		author = u
		return nil
	})
	g.Go(func() error {
		t, err := s.tweets.FindByID(gctx, tweetID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		tweet = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if author == nil {
		return nil, pkg.NotFound("user didn't exist")
	}
	if tweet == nil {
		return nil, pkg.NotFound("tweet didn't exist")
	}

	reply := &model.Reply{TweetID: tweetID, UserID: authorID, Comment: comment}
	if err := s.replies.Create(ctx, reply); err != nil {
		return nil, err
	}
	s.events.Publish("reply", authorID, tweetID)
	return reply, nil
}

// ListReplies 某则推文的全部回复，没有回复时返回空切片
func (s *TweetService) ListReplies(ctx context.Context, tweetID uint64) ([]model.ReplyView, error) {
	views, err := s.replies.ListByTweet(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	for i := range views {
		views[i].RelativeTime = pkg.RelativeTime(views[i].CreatedAt)
	}
	return views, nil
}

package service

import (
	"context"
	"errors"

	"Simple_Twitter/internal/model"
	"Simple_Twitter/internal/pkg"
	"Simple_Twitter/internal/repository/mysql"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type LikeService struct {
	tweets *mysql.TweetRepository
	likes  *mysql.LikeRepository
	events *EventPublisher
}

func NewLikeService(tweets *mysql.TweetRepository, likes *mysql.LikeRepository, events *EventPublisher) *LikeService {
	return &LikeService{
		tweets: tweets,
		likes:  likes,
		events: events,
	}
}

// AddLike 点赞。推文存在性和重复点赞两个读并行发出、一起等完，
// 判定顺序固定：推文存在 → 不是自己的推文 → 没点过赞。
func (s *LikeService) AddLike(ctx context.Context, currentUserID, tweetID uint64) (*model.Like, error) {
	var (
		tweet   *model.Tweet
		already bool
	)
	g, gctx := errgroup.WithContext(ctx)
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
	g.Go(func() error {
		ok, err := s.likes.Exists(gctx, currentUserID, tweetID)
		if err != nil {
			return err
		}
		already = ok
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if tweet == nil {
		return nil, pkg.NotFound("tweet didn't exist")
	}
	if tweet.UserID == currentUserID {
		return nil, pkg.SelfAction("cannot like your own tweet")
	}
	if already {
		return nil, pkg.Duplicate("you have already liked this tweet")
	}

	like := &model.Like{UserID: currentUserID, TweetID: tweetID}
	if err := s.likes.Create(ctx, like); err != nil {
		return nil, err
	}
	s.events.Publish("like", currentUserID, tweetID)
	return like, nil
}

// RemoveLike 取消点赞，返回被删掉那条记录的快照
func (s *LikeService) RemoveLike(ctx context.Context, currentUserID, tweetID uint64) (*model.Like, error) {
	like, err := s.likes.Find(ctx, currentUserID, tweetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.NotFound("you haven't liked this tweet")
	}
	if err != nil {
		return nil, err
	}
	if err := s.likes.Delete(ctx, like.ID); err != nil {
		return nil, err
	}
	s.events.Publish("unlike", currentUserID, tweetID)
	return like, nil
}

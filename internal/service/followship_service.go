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

// topUsersLimit 排行榜最多返回的用户数
const topUsersLimit = 10

type FollowshipService struct {
	users       *mysql.UserRepository
	followships *mysql.FollowshipRepository
	events      *EventPublisher
}

func NewFollowshipService(users *mysql.UserRepository, followships *mysql.FollowshipRepository, events *EventPublisher) *FollowshipService {
	return &FollowshipService{
		users:       users,
		followships: followships,
		events:      events,
	}
}

// Follow 关注目标用户。目标存在性和重复边两个读并行发出、一起等完，
// 判定顺序固定：自关注 → 目标存在（admin 不可被关注）→ 重复边。
func (s *FollowshipService) Follow(ctx context.Context, currentUserID, targetID uint64) (*model.Followship, error) {
	if currentUserID == targetID {
		return nil, pkg.SelfAction("cannot follow yourself")
	}

	var (
		target  *model.User
		already bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.users.FindByID(gctx, targetID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		target = u
		return nil
	})
	g.Go(func() error {
		ok, err := s.followships.Exists(gctx, currentUserID, targetID)
		if err != nil {
			return err
		}
		already = ok
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if target == nil || target.IsAdmin() {
		return nil, pkg.NotFound("user didn't exist")
	}
	if already {
		return nil, pkg.Duplicate("you are already following this user")
	}

	f := &model.Followship{FollowerID: currentUserID, FollowingID: targetID}
	if err := s.followships.Create(ctx, f); err != nil {
		return nil, err
	}
	s.events.Publish("follow", currentUserID, targetID)
	return f, nil
}

// Unfollow 取消关注，返回被删掉那条边的快照
func (s *FollowshipService) Unfollow(ctx context.Context, currentUserID, targetID uint64) (*model.Followship, error) {
	f, err := s.followships.FindEdge(ctx, currentUserID, targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkg.NotFound("you haven't followed this user")
	}
	if err != nil {
		return nil, err
	}
	if err := s.followships.Delete(ctx, f.ID); err != nil {
		return nil, err
	}
	s.events.Publish("unfollow", currentUserID, targetID)
	return f, nil
}

// TopUsers 粉丝数排行榜，每次现算，不走缓存
func (s *FollowshipService) TopUsers(ctx context.Context, currentUserID uint64) ([]model.RankedUser, error) {
	return s.users.TopUsers(ctx, currentUserID, topUsersLimit)
}

package service_test

import (
	"context"
	"testing"
	"time"

	"Simple_Twitter/internal/model"
	"Simple_Twitter/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddLikeUnknownTweet(t *testing.T) {
	f := newFixture(t)
	a := f.seedUser(t, "alice", model.RoleUser, time.Now())

	_, err := f.likes.AddLike(context.Background(), a.ID, 9999)
	requireKind(t, err, pkg.KindNotFound)
}

func TestAddLikeOwnTweet(t *testing.T) {
	f := newFixture(t)
	a := f.seedUser(t, "alice", model.RoleUser, time.Now())
	tw := f.seedTweet(t, a.ID, "hello", time.Now())

	_, err := f.likes.AddLike(context.Background(), a.ID, tw.ID)
	requireKind(t, err, pkg.KindSelfAction)

	// 不管点没点过，自己的推文永远不能赞
	_, err = f.likes.AddLike(context.Background(), a.ID, tw.ID)
	requireKind(t, err, pkg.KindSelfAction)
}

func TestLikeUnlikeCycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.seedUser(t, "alice", model.RoleUser, time.Now())
	b := f.seedUser(t, "bob", model.RoleUser, time.Now())
	tw := f.seedTweet(t, a.ID, "hello", time.Now())

	like, err := f.likes.AddLike(ctx, b.ID, tw.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, like.UserID)
	assert.Equal(t, tw.ID, like.TweetID)

	// 重复点赞被拒
	_, err = f.likes.AddLike(ctx, b.ID, tw.ID)
	requireKind(t, err, pkg.KindDuplicate)

	// 取消点赞返回快照
	deleted, err := f.likes.RemoveLike(ctx, b.ID, tw.ID)
	require.NoError(t, err)
	assert.Equal(t, like.ID, deleted.ID)

	// 取消后可以再点
	_, err = f.likes.AddLike(ctx, b.ID, tw.ID)
	require.NoError(t, err)
}

func TestRemoveLikeWithoutLike(t *testing.T) {
	f := newFixture(t)
	a := f.seedUser(t, "alice", model.RoleUser, time.Now())
	b := f.seedUser(t, "bob", model.RoleUser, time.Now())
	tw := f.seedTweet(t, a.ID, "hello", time.Now())

	_, err := f.likes.RemoveLike(context.Background(), b.ID, tw.ID)
	requireKind(t, err, pkg.KindNotFound)
}

// 对应完整场景：A 关注 B 后排行榜视角正确，B 赞 A 的推文后计数与标记正确
func TestFollowAndLikeScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	base := time.Date(2022, 11, 9, 12, 0, 0, 0, time.UTC)

	a := f.seedUser(t, "alice", model.RoleUser, base)
	b := f.seedUser(t, "bob", model.RoleUser, base.Add(time.Minute))

	edge, err := f.followships.Follow(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, edge.FollowerID)
	assert.Equal(t, b.ID, edge.FollowingID)

	users, err := f.followships.TopUsers(ctx, a.ID)
	require.NoError(t, err)
	var foundB bool
	for _, u := range users {
		if u.ID == b.ID {
			foundB = true
			assert.True(t, u.IsFollowing)
			assert.EqualValues(t, 1, u.FollowerCount)
		}
	}
	assert.True(t, foundB)

	tw, err := f.tweets.PostTweet(ctx, a.ID, "hello")
	require.NoError(t, err)
	_, err = f.likes.AddLike(ctx, b.ID, tw.ID)
	require.NoError(t, err)

	detail, err := f.tweets.GetTweet(ctx, tw.ID, b.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, detail.LikeCount)
	assert.True(t, detail.IsLiked)

	detail, err = f.tweets.GetTweet(ctx, tw.ID, a.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, detail.LikeCount)
	assert.False(t, detail.IsLiked)
}

package service_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"Simple_Twitter/internal/model"
	"Simple_Twitter/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostTweetValidation(t *testing.T) {
	f := newFixture(t)
	a := f.seedUser(t, "alice", model.RoleUser, time.Now())
	ctx := context.Background()

	_, err := f.tweets.PostTweet(ctx, a.ID, "")
	requireKind(t, err, pkg.KindValidation)

	_, err = f.tweets.PostTweet(ctx, a.ID, "   \t\n ")
	requireKind(t, err, pkg.KindValidation)

	// 140 个字符恰好通过，141 被拒；用全形字符确认按字符数不是字节数
	ok, err := f.tweets.PostTweet(ctx, a.ID, strings.Repeat("あ", 140))
	require.NoError(t, err)
	assert.NotZero(t, ok.ID)

	_, err = f.tweets.PostTweet(ctx, a.ID, strings.Repeat("あ", 141))
	requireKind(t, err, pkg.KindValidation)
}

func TestListTweets(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	base := time.Date(2022, 11, 9, 12, 0, 0, 0, time.UTC)

	a := f.seedUser(t, "alice", model.RoleUser, base)
	b := f.seedUser(t, "bob", model.RoleUser, base)

	first := f.seedTweet(t, a.ID, "hello", base.Add(1*time.Minute))
	second := f.seedTweet(t, b.ID, "world", base.Add(2*time.Minute))

	_, err := f.likes.AddLike(ctx, b.ID, first.ID)
	require.NoError(t, err)
	_, err = f.tweets.PostReply(ctx, first.ID, b.ID, "nice")
	require.NoError(t, err)

	// B 视角：倒序、计数、isLiked
	views, err := f.tweets.ListTweets(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, second.ID, views[0].ID)
	assert.Equal(t, first.ID, views[1].ID)

	hello := views[1]
	assert.Equal(t, "hello", hello.Description)
	assert.Equal(t, a.ID, hello.User.ID)
	assert.Equal(t, "alice", hello.User.Account)
	assert.EqualValues(t, 1, hello.LikeCount)
	assert.EqualValues(t, 1, hello.ReplyCount)
	assert.True(t, hello.IsLiked)
	assert.NotEmpty(t, hello.RelativeTime)

	// A 视角：同一则推文 isLiked 为 false
	views, err = f.tweets.ListTweets(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, views[1].IsLiked)
	assert.EqualValues(t, 1, views[1].LikeCount)
}

func TestGetTweet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	base := time.Date(2022, 11, 9, 12, 0, 0, 0, time.UTC)

	a := f.seedUser(t, "alice", model.RoleUser, base)
	tw := f.seedTweet(t, a.ID, "hello", base)

	detail, err := f.tweets.GetTweet(ctx, tw.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, tw.ID, detail.ID)
	assert.Equal(t, "alice", detail.User.Account)
	assert.NotEmpty(t, detail.RelativeTime)
	assert.NotEmpty(t, detail.ExactTime)
	assert.Contains(t, detail.ExactTime, "2022年")
}

func TestGetTweetNotFound(t *testing.T) {
	f := newFixture(t)
	a := f.seedUser(t, "alice", model.RoleUser, time.Now())

	_, err := f.tweets.GetTweet(context.Background(), 9999, a.ID)
	appErr := requireKind(t, err, pkg.KindNotFound)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestPostReply(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.seedUser(t, "alice", model.RoleUser, time.Now())
	tw := f.seedTweet(t, a.ID, "hello", time.Now())

	_, err := f.tweets.PostReply(ctx, tw.ID, a.ID, "  ")
	requireKind(t, err, pkg.KindValidation)

	_, err = f.tweets.PostReply(ctx, 9999, a.ID, "hi")
	requireKind(t, err, pkg.KindNotFound)

	_, err = f.tweets.PostReply(ctx, tw.ID, 9999, "hi")
	requireKind(t, err, pkg.KindNotFound)

	reply, err := f.tweets.PostReply(ctx, tw.ID, a.ID, "hi")
	require.NoError(t, err)
	assert.Equal(t, tw.ID, reply.TweetID)
	assert.Equal(t, a.ID, reply.UserID)
}

func TestListReplies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	base := time.Date(2022, 11, 9, 12, 0, 0, 0, time.UTC)

	author := f.seedUser(t, "author", model.RoleUser, base)
	replier := f.seedUser(t, "replier", model.RoleUser, base)
	tw := f.seedTweet(t, author.ID, "hello", base)

	// 没有回复时返回空切片，不报错
	views, err := f.tweets.ListReplies(ctx, tw.ID)
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)

	r1 := &model.Reply{TweetID: tw.ID, UserID: replier.ID, Comment: "first", CreatedAt: base.Add(1 * time.Minute)}
	r2 := &model.Reply{TweetID: tw.ID, UserID: author.ID, Comment: "second", CreatedAt: base.Add(2 * time.Minute)}
	require.NoError(t, f.db.Create(r1).Error)
	require.NoError(t, f.db.Create(r2).Error)

	views, err = f.tweets.ListReplies(ctx, tw.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	// 倒序
	assert.Equal(t, "second", views[0].Comment)
	assert.Equal(t, "first", views[1].Comment)

	// 回复者简要信息 + 推文作者帐号（二级 join）
	assert.Equal(t, replier.ID, views[1].User.ID)
	assert.Equal(t, "replier", views[1].User.Account)
	assert.Equal(t, author.ID, views[1].Tweet.UserID)
	assert.Equal(t, "author", views[1].Tweet.User.Account)
	assert.NotEmpty(t, views[1].RelativeTime)
}

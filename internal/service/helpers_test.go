package service_test

import (
	"testing"
	"time"

	"Simple_Twitter/internal/model"
	"Simple_Twitter/internal/pkg"
	"Simple_Twitter/internal/repository/mysql"
	"Simple_Twitter/internal/service"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 每个测试一个独立的内存 sqlite。
// 限制单连接：:memory: 下每个连接是一个独立数据库。
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Followship{},
		&model.Tweet{},
		&model.Like{},
		&model.Reply{},
	))
	return db
}

type fixture struct {
	db          *gorm.DB
	users       *mysql.UserRepository
	followships *service.FollowshipService
	tweets      *service.TweetService
	likes       *service.LikeService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	userRepo := mysql.NewUserRepository(db)
	followshipRepo := mysql.NewFollowshipRepository(db)
	tweetRepo := mysql.NewTweetRepository(db)
	likeRepo := mysql.NewLikeRepository(db)
	replyRepo := mysql.NewReplyRepository(db)
	events := service.NewEventPublisher(nil)

	return &fixture{
		db:          db,
		users:       userRepo,
		followships: service.NewFollowshipService(userRepo, followshipRepo, events),
		tweets:      service.NewTweetService(tweetRepo, replyRepo, userRepo, events),
		likes:       service.NewLikeService(tweetRepo, likeRepo, events),
	}
}

func (f *fixture) seedUser(t *testing.T, account, role string, createdAt time.Time) *model.User {
	t.Helper()

	u := &model.User{
		Account:   account,
		Name:      account,
		Email:     account + "@example.com",
		Password:  "hashed",
		Avatar:    "https://example.com/" + account + ".png",
		Role:      role,
		CreatedAt: createdAt,
	}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

func (f *fixture) seedTweet(t *testing.T, authorID uint64, description string, createdAt time.Time) *model.Tweet {
	t.Helper()

	tw := &model.Tweet{UserID: authorID, Description: description, CreatedAt: createdAt}
	require.NoError(t, f.db.Create(tw).Error)
	return tw
}

func requireKind(t *testing.T, err error, kind pkg.ErrKind) *pkg.AppError {
	t.Helper()

	var appErr *pkg.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, kind, appErr.Kind)
	return appErr
}

package router

import (
	"Simple_Twitter/internal/handler"
	"Simple_Twitter/internal/middleware"
	"Simple_Twitter/internal/pkg"
	"Simple_Twitter/internal/repository/mysql"
	redisrepo "Simple_Twitter/internal/repository/redis"
	"Simple_Twitter/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// InitRouter 组装仓储、服务、handler 和路由，依赖从 main 注入
func InitRouter(db *gorm.DB, rdb *redis.Client, stream *pkg.EventWriter, smtp pkg.SMTPConfig) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.ErrorHandler())

	userRepo := mysql.NewUserRepository(db)
	followshipRepo := mysql.NewFollowshipRepository(db)
	tweetRepo := mysql.NewTweetRepository(db)
	likeRepo := mysql.NewLikeRepository(db)
	replyRepo := mysql.NewReplyRepository(db)
	tokenRepo := redisrepo.NewTokenRepository(rdb)

	events := service.NewEventPublisher(stream)

	user := handler.NewUserHandler(service.NewUserService(userRepo, tokenRepo, smtp))
	followship := handler.NewFollowshipHandler(service.NewFollowshipService(userRepo, followshipRepo, events))
	tweet := handler.NewTweetHandler(service.NewTweetService(tweetRepo, replyRepo, userRepo, events))
	like := handler.NewLikeHandler(service.NewLikeService(tweetRepo, likeRepo, events))

	auth := middleware.AuthMiddleware(tokenRepo)

	// 用户相关接口
	userGroup := r.Group("/api/users")
	{
		userGroup.POST("", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/logout", auth, user.Logout)
		userGroup.POST("/change-password", auth, user.ChangePassword)
		userGroup.GET("/top", auth, followship.TopUsers)
	}

	// token相关接口
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	// 关注相关接口
	followshipGroup := r.Group("/api/followships")
	followshipGroup.Use(auth)
	{
		followshipGroup.POST("", followship.Follow)
		followshipGroup.DELETE("/:followingId", followship.Unfollow)
	}

	// 推文相关接口
	tweetGroup := r.Group("/api/tweets")
	tweetGroup.Use(auth)
	{
		tweetGroup.GET("", tweet.ListTweets)
		tweetGroup.POST("", tweet.PostTweet)
		tweetGroup.GET("/:tweet_id", tweet.GetTweet)
		tweetGroup.GET("/:tweet_id/replies", tweet.ListReplies)
		tweetGroup.POST("/:tweet_id/replies", tweet.PostReply)
		tweetGroup.POST("/:tweet_id/like", like.AddLike)
		tweetGroup.POST("/:tweet_id/unlike", like.RemoveLike)
	}

	return r
}

package handler

import (
	"net/http"
	"strconv"

	"Simple_Twitter/internal/service"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	svc *service.TweetService
}

func NewTweetHandler(svc *service.TweetService) *TweetHandler {
	return &TweetHandler{svc: svc}
}

type postTweetReq struct {
	Description string `json:"description"`
}

type postReplyReq struct {
	Comment string `json:"comment"`
}

// PostTweet 发推接口
func (h *TweetHandler) PostTweet(c *gin.Context) {
	var req postTweetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	uid := userIDFromCtx(c)

	tweet, err := h.svc.PostTweet(c.Request.Context(), uid, req.Description)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, tweet)
}

// ListTweets 全部推文接口
func (h *TweetHandler) ListTweets(c *gin.Context) {
	uid := userIDFromCtx(c)

	tweets, err := h.svc.ListTweets(c.Request.Context(), uid)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, tweets)
}

// GetTweet 单则推文接口
func (h *TweetHandler) GetTweet(c *gin.Context) {
	tweetID, err := strconv.ParseUint(c.Param("tweet_id"), 10, 64)
	if err != nil || tweetID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid tweet id"})
		return
	}
	uid := userIDFromCtx(c)

	tweet, err := h.svc.GetTweet(c.Request.Context(), tweetID, uid)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, tweet)
}

// PostReply 回复推文接口
func (h *TweetHandler) PostReply(c *gin.Context) {
	tweetID, err := strconv.ParseUint(c.Param("tweet_id"), 10, 64)
	if err != nil || tweetID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid tweet id"})
		return
	}
	var req postReplyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	uid := userIDFromCtx(c)

	reply, err := h.svc.PostReply(c.Request.Context(), tweetID, uid, req.Comment)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, reply)
}

// ListReplies 推文回复列表接口
func (h *TweetHandler) ListReplies(c *gin.Context) {
	tweetID, err := strconv.ParseUint(c.Param("tweet_id"), 10, 64)
	if err != nil || tweetID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid tweet id"})
		return
	}

	replies, err := h.svc.ListReplies(c.Request.Context(), tweetID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, replies)
}

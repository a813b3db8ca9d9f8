package handler

import (
	"net/http"
	"strconv"

	"Simple_Twitter/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	svc *service.LikeService
}

func NewLikeHandler(svc *service.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

// AddLike 点赞接口
func (h *LikeHandler) AddLike(c *gin.Context) {
	tweetID, err := strconv.ParseUint(c.Param("tweet_id"), 10, 64)
	if err != nil || tweetID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid tweet id"})
		return
	}
	uid := userIDFromCtx(c)

	like, err := h.svc.AddLike(c.Request.Context(), uid, tweetID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, like)
}

// RemoveLike 取消点赞接口
func (h *LikeHandler) RemoveLike(c *gin.Context) {
	tweetID, err := strconv.ParseUint(c.Param("tweet_id"), 10, 64)
	if err != nil || tweetID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid tweet id"})
		return
	}
	uid := userIDFromCtx(c)

	like, err := h.svc.RemoveLike(c.Request.Context(), uid, tweetID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, like)
}

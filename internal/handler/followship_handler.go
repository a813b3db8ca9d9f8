package handler

import (
	"net/http"
	"strconv"

	"Simple_Twitter/internal/middleware"
	"Simple_Twitter/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowshipHandler struct {
	svc *service.FollowshipService
}

func NewFollowshipHandler(svc *service.FollowshipService) *FollowshipHandler {
	return &FollowshipHandler{svc: svc}
}

type followReq struct {
	ID uint64 `json:"id" binding:"required"`
}

// Follow 关注接口
func (h *FollowshipHandler) Follow(c *gin.Context) {
	var req followReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	uid := userIDFromCtx(c)

	f, err := h.svc.Follow(c.Request.Context(), uid, req.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// Unfollow 取消关注接口
func (h *FollowshipHandler) Unfollow(c *gin.Context) {
	followingID, err := strconv.ParseUint(c.Param("followingId"), 10, 64)
	if err != nil || followingID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid following id"})
		return
	}
	uid := userIDFromCtx(c)

	f, err := h.svc.Unfollow(c.Request.Context(), uid, followingID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// TopUsers 粉丝数排行榜接口
func (h *FollowshipHandler) TopUsers(c *gin.Context) {
	uid := userIDFromCtx(c)

	users, err := h.svc.TopUsers(c.Request.Context(), uid)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func userIDFromCtx(c *gin.Context) uint64 {
	if v, ok := c.Get(middleware.ContextUserIDKey); ok {
		if id, ok2 := v.(uint64); ok2 {
			return id
		}
	}
	return 0
}

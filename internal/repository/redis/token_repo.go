package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrRedisUnavailable = errors.New("redis unavailable")
	ErrExtendFailed     = errors.New("token extend failed")
	ErrTokenDeleted     = errors.New("token delete failed")
)

const (
	userTokenPrefix = "login:user:token"
	userTokenExpire = 30 * time.Minute
)

// TokenRepository 登录态 token 存储，单点登录：一个用户同时只有一个有效 access token
type TokenRepository struct {
	Client *redis.Client
}

func NewTokenRepository(client *redis.Client) *TokenRepository {
	return &TokenRepository{Client: client}
}

func tokenKey(userID uint64) string {
	return fmt.Sprintf("%s:%d", userTokenPrefix, userID)
}

func (r *TokenRepository) AddUserToken(ctx context.Context, userID uint64, token string) error {
	if err := r.Client.Set(ctx, tokenKey(userID), token, userTokenExpire).Err(); err != nil {
		return ErrRedisUnavailable
	}
	return nil
}

func (r *TokenRepository) GetUserToken(ctx context.Context, userID uint64) (string, error) {
	token, err := r.Client.Get(ctx, tokenKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrTokenNotFound
	}
	if err != nil {
		return "", ErrRedisUnavailable
	}
	return token, nil
}

// ExtendUserToken 校验通过后顺延过期时间
func (r *TokenRepository) ExtendUserToken(ctx context.Context, userID uint64) error {
	if _, err := r.Client.Expire(ctx, tokenKey(userID), userTokenExpire).Result(); err != nil {
		return ErrExtendFailed
	}
	return nil
}

func (r *TokenRepository) DeleteUserToken(ctx context.Context, userID uint64) error {
	if err := r.Client.Del(ctx, tokenKey(userID)).Err(); err != nil {
		return ErrTokenDeleted
	}
	return nil
}

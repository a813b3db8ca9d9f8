package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"Simple_Twitter/internal/model"
	"Simple_Twitter/internal/pkg"
	"Simple_Twitter/internal/repository/mysql"
	"Simple_Twitter/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	users  *mysql.UserRepository
	tokens *redis.TokenRepository
	smtp   pkg.SMTPConfig
}

func NewUserService(users *mysql.UserRepository, tokens *redis.TokenRepository, smtp pkg.SMTPConfig) *UserService {
	return &UserService{
		users:  users,
		tokens: tokens,
		smtp:   smtp,
	}
}

// Register 注册。帐号/邮箱唯一，密码 bcrypt 存储，成功后异步发欢迎邮件。
func (s *UserService) Register(ctx context.Context, account, name, email, password string) (*model.User, error) {
	if strings.TrimSpace(account) == "" || strings.TrimSpace(name) == "" {
		return nil, pkg.Validation("account and name can not be blank")
	}
	if len(password) < 6 {
		return nil, pkg.Validation("password is too short")
	}

	if _, err := s.users.FindByAccount(ctx, account); err == nil {
		return nil, pkg.Duplicate("account already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, pkg.Duplicate("email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Account:  account,
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     model.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.smtp.Host != "" {
		go func(to, name, account string) {
			html := pkg.WelcomeEmailHTML(name, account)
			if err := pkg.SendEmail(s.smtp, to, "欢迎加入 Simple Twitter", html); err != nil {
				log.Printf("welcome email err: %v", err)
			}
		}(email, name, account)
	}
	return user, nil
}

// Login 登录，签发 token 对并把 access token 写进 redis
func (s *UserService) Login(ctx context.Context, account, password string) (*pkg.Pair, error) {
	user, err := s.users.FindByAccount(ctx, account)
	if err != nil {
		return nil, pkg.Unauthorized("user not found")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, pkg.Unauthorized("invalid password")
	}

	pair, err := pkg.GeneratePair(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.AddUserToken(ctx, user.ID, pair.AccessToken); err != nil {
		return nil, err
	}
	return pair, nil
}

// ChangePassword 登录态修改密码。旧密码校验通过才换，换完清掉会话强制重新登录。
func (s *UserService) ChangePassword(ctx context.Context, userID uint64, oldPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return pkg.Validation("password is too short")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return pkg.Unauthorized("invalid password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user, string(hash)); err != nil {
		return err
	}
	return s.Logout(ctx, userID)
}

func (s *UserService) Logout(ctx context.Context, userID uint64) error {
	if s.tokens == nil {
		return nil
	}
	return s.tokens.DeleteUserToken(ctx, userID)
}

func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	return pkg.Refresh(refreshToken)
}

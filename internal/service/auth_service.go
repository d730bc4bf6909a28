package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"YClaw/internal/dto"
	"YClaw/internal/model"
	"YClaw/internal/repository"
	"YClaw/internal/utils"
)

var (
	// ErrInvalidCredentials 登录失败统一用这一条，
	// 不区分"邮箱不存在"和"密码错误"，防止撞库探测账号
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountExists 注册冲突。措辞保持和前端一致
	ErrAccountExists = errors.New("could not create account, try signing in instead")
)

type AuthService interface {
	Register(req dto.RegisterReq) (*dto.AuthResp, error)
	Login(req dto.LoginReq) (*dto.AuthResp, error)
	Guest() (*dto.AuthResp, error)
}

type authService struct {
	repo repository.UserRepository
}

func NewAuthService(repo repository.UserRepository) AuthService {
	return &authService{repo: repo}
}

// Register 注册业务逻辑
func (s *authService) Register(req dto.RegisterReq) (*dto.AuthResp, error) {
	// 1. 业务检查：邮箱是否已被占用
	if s.repo.IsEmailExist(req.Email) {
		return nil, ErrAccountExists
	}

	// 2. 密码加密
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	// 3. 组装 Model
	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         "user",
	}

	// 4. 落库
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// Login 登录业务逻辑
func (s *authService) Login(req dto.LoginReq) (*dto.AuthResp, error) {
	// 1. 查用户。查不到也返回统一错误
	user, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// 2. 游客账号没有密码，不允许走密码登录
	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	// 3. 比对密码
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// Guest 游客模式：创建一个匿名账号并直接登录。
// 账号标识随机生成，不是合法邮箱，后续无法凭密码找回
func (s *authService) Guest() (*dto.AuthResp, error) {
	user := &model.User{
		Email:   "guest-" + randomHex(8),
		IsGuest: true,
		Role:    "guest",
	}

	if err := s.repo.Create(user); err != nil {
		return nil, errors.New("could not continue as guest")
	}

	return s.issueToken(user)
}

// issueToken 签发 Token 并组装响应
func (s *authService) issueToken(user *model.User) (*dto.AuthResp, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &dto.AuthResp{
		Token:   token,
		UserID:  user.ID,
		Email:   user.Email,
		IsGuest: user.IsGuest,
	}, nil
}

func randomHex(n int) string {
	b := make([]byte, n)
	// crypto/rand 的 Read 实际不会失败，忽略错误
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

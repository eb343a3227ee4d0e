package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/hctech/phuocthai-backend/internal/config"
	"github.com/hctech/phuocthai-backend/internal/model/entity"
	"github.com/hctech/phuocthai-backend/internal/repository"
)

// TokenPair - cặp access/refresh token trả về khi đăng nhập.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// AuthService đăng nhập bằng mật khẩu, phát JWT và quản lý refresh
// token qua Redis.
type AuthService struct {
	userRepo *repository.UserRepository
	rdb      *redis.Client
	cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, cfg *config.Config) *AuthService {
	return &AuthService{userRepo: userRepo, rdb: rdb, cfg: cfg}
}

// Login kiểm tra tài khoản và phát cặp token. Sai tài khoản hay sai
// mật khẩu đều trả cùng một thông báo.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.User, *TokenPair, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, Invalid("tên đăng nhập hoặc mật khẩu không đúng")
	}
	if !user.IsActive {
		return nil, nil, Invalid("tài khoản đã bị khoá")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, Invalid("tên đăng nhập hoặc mật khẩu không đúng")
	}
	pair, err := s.generateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (s *AuthService) generateTokenPair(ctx context.Context, user *entity.User) (*TokenPair, error) {
	now := time.Now()

	accessClaims := jwt.MapClaims{
		"sub":       user.ID,
		"username":  user.Username,
		"full_name": user.FullName,
		"role":      user.Role,
		"iss":       s.cfg.JWT.Issuer,
		"iat":       now.Unix(),
		"exp":       now.Add(s.cfg.JWT.AccessTokenExpire).Unix(),
		"jti":       uuid.New().String(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).
		SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	refreshJti := uuid.New().String()
	refreshClaims := jwt.MapClaims{
		"sub":  user.ID,
		"type": "refresh",
		"iss":  s.cfg.JWT.Issuer,
		"iat":  now.Unix(),
		"exp":  now.Add(s.cfg.JWT.RefreshTokenExpire).Unix(),
		"jti":  refreshJti,
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).
		SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	if s.rdb != nil {
		s.rdb.Set(ctx, "token:refresh:"+refreshJti, user.ID, s.cfg.JWT.RefreshTokenExpire)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.cfg.JWT.AccessTokenExpire.Seconds()),
	}, nil
}

// RefreshToken đổi refresh token lấy cặp token mới. Token cũ bị thu
// hồi ngay, mỗi refresh token chỉ dùng được một lần.
func (s *AuthService) RefreshToken(ctx context.Context, refreshTokenString string) (*TokenPair, error) {
	token, err := jwt.Parse(refreshTokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, Invalid("refresh token không hợp lệ")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["type"] != "refresh" {
		return nil, Invalid("refresh token không hợp lệ")
	}
	jti, _ := claims["jti"].(string)
	if jti == "" || s.rdb == nil {
		return nil, Invalid("refresh token không hợp lệ")
	}

	userID, err := s.rdb.Get(ctx, "token:refresh:"+jti).Result()
	if err != nil {
		return nil, Invalid("refresh token đã hết hạn hoặc bị thu hồi")
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil || !user.IsActive {
		return nil, Invalid("tài khoản không còn hiệu lực")
	}

	s.rdb.Del(ctx, "token:refresh:"+jti)
	return s.generateTokenPair(ctx, user)
}

// Logout thu hồi refresh token đang dùng.
func (s *AuthService) Logout(ctx context.Context, refreshTokenString string) error {
	if refreshTokenString == "" || s.rdb == nil {
		return nil
	}
	token, err := jwt.Parse(refreshTokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if jti, _ := claims["jti"].(string); jti != "" {
			s.rdb.Del(ctx, "token:refresh:"+jti)
		}
	}
	return nil
}

// GetCurrentUser đọc hồ sơ người đang đăng nhập.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// ChangePassword đổi mật khẩu sau khi kiểm tra mật khẩu cũ.
func (s *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return Invalid("mật khẩu hiện tại không đúng")
	}
	if len(newPassword) < 6 {
		return Invalid("mật khẩu mới tối thiểu 6 ký tự")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return s.userRepo.Save(ctx, user)
}

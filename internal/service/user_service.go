package service

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
	"github.com/hctech/phuocthai-backend/internal/repository"
)

// CreateUserRequest - tạo tài khoản mới (chỉ admin).
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role"`
}

// UpdateUserRequest - trường nil giữ nguyên giá trị cũ.
type UpdateUserRequest struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
	FullName *string `json:"full_name"`
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

// UserService quản lý tài khoản cán bộ.
type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) List(ctx context.Context, page, pageSize int) ([]entity.User, int64, error) {
	return s.userRepo.List(ctx, page, pageSize)
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, req *CreateUserRequest) (*entity.User, error) {
	role := req.Role
	if role == "" {
		role = entity.RoleChuyenVien
	}
	if role != entity.RoleAdmin && role != entity.RoleChuyenVien {
		return nil, Invalid("vai trò không hợp lệ: %s", role)
	}

	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	taken, err := s.userRepo.UsernameOrEmailTaken(ctx, username, email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, Invalid("tên đăng nhập hoặc email đã tồn tại")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(req.FullName),
		Role:         role,
		IsActive:     true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, req *UpdateUserRequest) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email != user.Email {
			taken, err := s.userRepo.UsernameOrEmailTaken(ctx, "", email, user.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, Invalid("email đã tồn tại")
			}
			user.Email = email
		}
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			return nil, Invalid("mật khẩu tối thiểu 6 ký tự")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Role != nil {
		if *req.Role != entity.RoleAdmin && *req.Role != entity.RoleChuyenVien {
			return nil, Invalid("vai trò không hợp lệ: %s", *req.Role)
		}
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete vô hiệu tài khoản. Không cho tự xoá tài khoản đang đăng nhập.
func (s *UserService) Delete(ctx context.Context, id, actorID string) error {
	if id == actorID {
		return Invalid("không thể xoá tài khoản đang đăng nhập")
	}
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.userRepo.SoftDelete(ctx, user)
}

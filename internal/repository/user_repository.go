package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hctech/phuocthai-backend/internal/model/entity"
)

// UserRepository quản lý tài khoản cán bộ.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Where("username = ? AND is_deleted = ?", username, false).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UsernameOrEmailTaken kiểm tra trùng tên đăng nhập hoặc email.
func (r *UserRepository) UsernameOrEmailTaken(ctx context.Context, username, email, excludeID string) (bool, error) {
	var total int64
	query := r.db.WithContext(ctx).Model(&entity.User{}).
		Where("(username = ? OR email = ?) AND is_deleted = ?", username, email, false)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&total).Error
	return total > 0, err
}

func (r *UserRepository) List(ctx context.Context, page, pageSize int) ([]entity.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.User{}).Where("is_deleted = ?", false)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []entity.User
	err := query.
		Order("created_at ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).Error
	return users, total, err
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) Save(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *UserRepository) SoftDelete(ctx context.Context, user *entity.User) error {
	user.IsDeleted = true
	return r.db.WithContext(ctx).Model(user).Update("is_deleted", true).Error
}

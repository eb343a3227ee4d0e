package entity

// Vai trò người dùng.
const (
	RoleAdmin      = "admin"
	RoleChuyenVien = "chuyen_vien"
)

// User - tài khoản cán bộ của đơn vị.
type User struct {
	BaseModel
	Username     string `json:"username" gorm:"type:varchar(80);uniqueIndex;not null"`
	Email        string `json:"email" gorm:"type:varchar(120);uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"type:varchar(255);not null"`
	FullName     string `json:"full_name" gorm:"type:varchar(100);not null"`
	Role         string `json:"role" gorm:"type:varchar(20);not null;default:'chuyen_vien'"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
}

func (User) TableName() string { return "users" }

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repositories gom toàn bộ tầng truy cập dữ liệu.
type Repositories struct {
	Asset       *AssetRepository
	Sequence    *SequenceRepository
	Maintenance *MaintenanceRepository
	TinBao      *TinBaoRepository
	VuAn        *VuAnRepository
	BiCan       *BiCanRepository
	TamGiam     *TamGiamRepository
	User        *UserRepository
}

// NewRepositories khởi tạo tập repository dùng chung một kết nối gorm.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Asset:       NewAssetRepository(db),
		Sequence:    NewSequenceRepository(db),
		Maintenance: NewMaintenanceRepository(db),
		TinBao:      NewTinBaoRepository(db),
		VuAn:        NewVuAnRepository(db),
		BiCan:       NewBiCanRepository(db),
		TamGiam:     NewTamGiamRepository(db),
		User:        NewUserRepository(db),
	}
}

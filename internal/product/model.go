package product

import (
	"time"

	"gorm.io/gorm"
)

// Status do produto: 0 = "new", 1 = "old".
const (
	StatusNew = 0
	StatusOld = 1
)

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Status      int     `gorm:"not null;default:0" json:"status"`
	Percentage  float64 `gorm:"not null;default:0" json:"percentage"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Product{})
}

package client

import (
	"time"

	"gorm.io/gorm"
)

// Client é o comprador identificado pelo documento fiscal (cpf/cnpj).
// Status 0 = nunca comprou, 1 = já comprou.
type Client struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"size:255;not null" json:"name"`
	CPF     string  `gorm:"size:14;index" json:"cpf"`
	Segment string  `gorm:"size:255" json:"segment"`
	Bonus   float64 `gorm:"not null;default:0" json:"bonus"`
	Status  int     `gorm:"not null;default:0" json:"status"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Client{})
}

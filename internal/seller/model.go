package seller

import (
	"time"

	"gorm.io/gorm"
)

// Seller acumula score a cada comissão registrada; o score nunca diminui.
type Seller struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"size:255;not null" json:"name"`
	Email   string  `gorm:"size:255;unique" json:"email"`
	CPF     string  `gorm:"size:14;index" json:"cpf"`
	Score   float64 `gorm:"not null;default:0" json:"score"`
	Senha   string  `gorm:"size:255" json:"-"`
	IsAdmin bool    `gorm:"not null;default:false" json:"isAdmin"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Seller{})
}

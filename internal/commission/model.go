package commission

import (
	"time"

	"gorm.io/gorm"
)

// Commission registra uma venda comissionada. ClientsFirstPurchase é uma foto
// do status do cliente no momento do registro e nunca é recalculado depois.
type Commission struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Date                 time.Time `gorm:"index" json:"date"`
	Value                float64   `gorm:"not null;default:0" json:"value"`
	CommissionCut        float64   `gorm:"not null;default:0" json:"commissionCut"`
	PaymentMethod        string    `gorm:"size:100" json:"paymentMethod"`
	ClientsFirstPurchase bool      `gorm:"not null;default:false" json:"clientsFirstPurchase"`
	ClientCNPJ           string    `gorm:"column:client_cnpj;size:14;index" json:"clientCNPJ"`
	ProductID            uint      `gorm:"index" json:"productId"`
	SellerCPF            string    `gorm:"column:seller_cpf;size:14;index" json:"sellerCPF"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Commission{})
}

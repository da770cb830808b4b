package seller

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, s *Seller) error
	ListarTodos(db *gorm.DB) ([]Seller, error)
	BuscarPorID(db *gorm.DB, id uint) (*Seller, error)
	BuscarPorEmailOuCPF(db *gorm.DB, valor string) (*Seller, error)
	IncrementarScore(db *gorm.DB, cpf string, pontos float64) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, s *Seller) error {
	return db.Save(s).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Seller, error) {
	var sellers []Seller
	err := db.Find(&sellers).Error
	return sellers, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Seller, error) {
	var s Seller
	if err := db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Busca primeiro por e-mail, depois por CPF, para evitar ambiguidade
func (r *repositoryImpl) BuscarPorEmailOuCPF(db *gorm.DB, valor string) (*Seller, error) {
	var s Seller

	if err := db.Where("email = ?", valor).First(&s).Error; err == nil {
		return &s, nil
	}
	if err := db.Where("cpf = ?", valor).First(&s).Error; err == nil {
		return &s, nil
	}

	return nil, gorm.ErrRecordNotFound
}

// IncrementarScore soma pontos ao score direto no banco (score = score + n),
// seguro sob requisições concorrentes.
func (r *repositoryImpl) IncrementarScore(db *gorm.DB, cpf string, pontos float64) error {
	return db.Model(&Seller{}).Where("cpf = ?", cpf).
		UpdateColumn("score", gorm.Expr("score + ?", pontos)).Error
}

package product

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, p *Product) error
	ListarTodos(db *gorm.DB) ([]Product, error)
	BuscarPorID(db *gorm.DB, id uint) (*Product, error)
	BuscarPorStatus(db *gorm.DB, status int) ([]Product, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Product) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Product) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Product, error) {
	var products []Product
	err := db.Find(&products).Error
	return products, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Product, error) {
	var p Product
	if err := db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// BuscarPorStatus retorna os produtos de um status (0 new / 1 old).
func (r *repositoryImpl) BuscarPorStatus(db *gorm.DB, status int) ([]Product, error) {
	var products []Product
	err := db.Where("status = ?", status).Find(&products).Error
	return products, err
}

// Atualizar aplica a lista fixa de campos editáveis; percentage só entra aqui,
// nunca na criação.
func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Product) error {
	return db.Model(&Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        novosDados.Name,
		"description": novosDados.Description,
		"status":      novosDados.Status,
		"percentage":  novosDados.Percentage,
	}).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Product{}, id).Error
}

package client

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, c *Client) error
	ListarTodos(db *gorm.DB) ([]Client, error)
	BuscarPorID(db *gorm.DB, id uint) (*Client, error)
	BuscarPorCPF(db *gorm.DB, cpf string) (*Client, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Client) error
	MarcarComoComprador(db *gorm.DB, cpf string) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Client) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Client, error) {
	var clients []Client
	err := db.Find(&clients).Error
	return clients, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Client, error) {
	var c Client
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repositoryImpl) BuscarPorCPF(db *gorm.DB, cpf string) (*Client, error) {
	var c Client
	if err := db.Where("cpf = ?", cpf).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Atualizar aplica apenas os campos editáveis do cliente.
func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Client) error {
	return db.Model(&Client{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":    novosDados.Name,
		"cpf":     novosDados.CPF,
		"segment": novosDados.Segment,
		"bonus":   novosDados.Bonus,
	}).Error
}

// MarcarComoComprador grava status 1 para o cliente do documento informado.
// Sobrescrita incondicional: repetir a operação é um no-op.
func (r *repositoryImpl) MarcarComoComprador(db *gorm.DB, cpf string) error {
	return db.Model(&Client{}).Where("cpf = ?", cpf).Update("status", 1).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Client{}, id).Error
}

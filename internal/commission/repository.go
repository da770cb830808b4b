package commission

import (
	"time"

	"gorm.io/gorm"
)

// ListFilter compõe os filtros da listagem; todos combinados com AND.
// ProductIDs, quando não-nulo, tem precedência sobre ProductID.
type ListFilter struct {
	ProductID     uint
	ProductIDs    []uint
	ClientCNPJ    string
	SellerCPF     string
	FirstPurchase bool
	Start         *time.Time
	End           *time.Time
	Offset        int
	Limit         int
}

type Repository interface {
	Salvar(db *gorm.DB, c *Commission) error
	Listar(db *gorm.DB, f ListFilter) ([]Commission, error)
	ListarTodas(db *gorm.DB) ([]Commission, error)
	BuscarPorID(db *gorm.DB, id uint) (*Commission, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Commission) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, c *Commission) error {
	return db.Create(c).Error
}

// Listar aplica o filtro no banco, sempre ordenando por data ascendente.
func (r *repositoryImpl) Listar(db *gorm.DB, f ListFilter) ([]Commission, error) {
	q := db.Model(&Commission{}).Order("date ASC")

	if f.ProductIDs != nil {
		q = q.Where("product_id IN ?", f.ProductIDs)
	} else if f.ProductID != 0 {
		q = q.Where("product_id = ?", f.ProductID)
	}
	if f.ClientCNPJ != "" {
		q = q.Where("client_cnpj = ?", f.ClientCNPJ)
	}
	if f.SellerCPF != "" {
		q = q.Where("seller_cpf = ?", f.SellerCPF)
	}
	if f.FirstPurchase {
		q = q.Where("clients_first_purchase = ?", true)
	}
	if f.Start != nil && f.End != nil {
		q = q.Where("date BETWEEN ? AND ?", *f.Start, *f.End)
	}
	if f.Limit > 0 {
		q = q.Offset(f.Offset).Limit(f.Limit)
	}

	var list []Commission
	err := q.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarTodas(db *gorm.DB) ([]Commission, error) {
	var list []Commission
	err := db.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Commission, error) {
	var c Commission
	if err := db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// Atualizar aplica a lista fixa de campos editáveis. As referências de cliente
// e vendedor ficam de fora: o corpo da requisição usa clientId/sellerId, que
// não existem neste schema (client_cnpj/seller_cpf), então não há o que mapear.
func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Commission) error {
	return db.Model(&Commission{}).Where("id = ?", id).Updates(map[string]interface{}{
		"date":           novosDados.Date,
		"value":          novosDados.Value,
		"commission_cut": novosDados.CommissionCut,
		"payment_method": novosDados.PaymentMethod,
		"product_id":     novosDados.ProductID,
	}).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Commission{}, id).Error
}

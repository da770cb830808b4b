package commission

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Byte-Boost/Backend-Otter/internal/auth"
	"github.com/Byte-Boost/Backend-Otter/internal/client"
	"github.com/Byte-Boost/Backend-Otter/internal/product"
	"github.com/Byte-Boost/Backend-Otter/internal/seller"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ---- fakes dos repositórios ----

type fakeComissoes struct {
	saved      []Commission
	list       []Commission
	lastFilter *ListFilter
}

func (f *fakeComissoes) Salvar(db *gorm.DB, c *Commission) error {
	c.ID = uint(len(f.saved) + 1)
	f.saved = append(f.saved, *c)
	return nil
}

func (f *fakeComissoes) Listar(db *gorm.DB, filter ListFilter) ([]Commission, error) {
	f.lastFilter = &filter
	return f.list, nil
}

func (f *fakeComissoes) ListarTodas(db *gorm.DB) ([]Commission, error) {
	return f.list, nil
}

func (f *fakeComissoes) BuscarPorID(db *gorm.DB, id uint) (*Commission, error) {
	for i := range f.saved {
		if f.saved[i].ID == id {
			return &f.saved[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeComissoes) Atualizar(db *gorm.DB, id uint, novosDados *Commission) error {
	return nil
}

func (f *fakeComissoes) Deletar(db *gorm.DB, id uint) error {
	return nil
}

type fakeClientes struct {
	porCPF map[string]*client.Client
}

func (f *fakeClientes) Salvar(db *gorm.DB, c *client.Client) error           { return nil }
func (f *fakeClientes) ListarTodos(db *gorm.DB) ([]client.Client, error)     { return nil, nil }
func (f *fakeClientes) BuscarPorID(db *gorm.DB, id uint) (*client.Client, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeClientes) BuscarPorCPF(db *gorm.DB, cpf string) (*client.Client, error) {
	if c, ok := f.porCPF[cpf]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeClientes) Atualizar(db *gorm.DB, id uint, novosDados *client.Client) error { return nil }
func (f *fakeClientes) MarcarComoComprador(db *gorm.DB, cpf string) error {
	if c, ok := f.porCPF[cpf]; ok {
		c.Status = 1
	}
	return nil
}
func (f *fakeClientes) Deletar(db *gorm.DB, id uint) error { return nil }

type fakeProdutos struct {
	porStatus map[int][]product.Product
}

func (f *fakeProdutos) Salvar(db *gorm.DB, p *product.Product) error       { return nil }
func (f *fakeProdutos) ListarTodos(db *gorm.DB) ([]product.Product, error) { return nil, nil }
func (f *fakeProdutos) BuscarPorID(db *gorm.DB, id uint) (*product.Product, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeProdutos) BuscarPorStatus(db *gorm.DB, status int) ([]product.Product, error) {
	return f.porStatus[status], nil
}
func (f *fakeProdutos) Atualizar(db *gorm.DB, id uint, novosDados *product.Product) error {
	return nil
}
func (f *fakeProdutos) Deletar(db *gorm.DB, id uint) error { return nil }

type incremento struct {
	cpf    string
	pontos float64
}

type fakeVendedores struct {
	porID       map[uint]*seller.Seller
	incrementos []incremento
}

func (f *fakeVendedores) Salvar(db *gorm.DB, s *seller.Seller) error       { return nil }
func (f *fakeVendedores) ListarTodos(db *gorm.DB) ([]seller.Seller, error) { return nil, nil }
func (f *fakeVendedores) BuscarPorID(db *gorm.DB, id uint) (*seller.Seller, error) {
	if s, ok := f.porID[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeVendedores) BuscarPorEmailOuCPF(db *gorm.DB, valor string) (*seller.Seller, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeVendedores) IncrementarScore(db *gorm.DB, cpf string, pontos float64) error {
	f.incrementos = append(f.incrementos, incremento{cpf, pontos})
	return nil
}

// ---- helpers ----

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

func comContexto(req *http.Request, userID uint, admin bool) *http.Request {
	ctx := context.WithValue(req.Context(), auth.CtxUserID, userID)
	ctx = context.WithValue(ctx, auth.CtxIsAdmin, admin)
	return req.WithContext(ctx)
}

// ---- criação ----

func TestCriarComissaoMarcaPrimeiraCompra(t *testing.T) {
	gdb, mock := setupMockDB(t)

	repo := &fakeComissoes{}
	clientes := &fakeClientes{porCPF: map[string]*client.Client{
		"12345678000199": {ID: 1, CPF: "12345678000199", Status: 0},
	}}
	vendedores := &fakeVendedores{porID: map[uint]*seller.Seller{}}

	h := &Handler{
		DB:         gdb,
		Repository: repo,
		Clients:    clientes,
		Products:   &fakeProdutos{},
		Sellers:    vendedores,
		Log:        logrus.New(),
	}

	body := `{"date":"2024-03-10T12:00:00Z","value":1000,"commissionCut":100,` +
		`"paymentMethod":"pix","clientCNPJ":"12.345.678/0001-99",` +
		`"productId":3,"sellerCPF":"529.982.247-25","scorePoints":5}`

	mock.ExpectBegin()
	mock.ExpectCommit()

	req := comContexto(httptest.NewRequest("POST", "/commissions", strings.NewReader(body)), 1, true)
	rec := httptest.NewRecorder()
	h.CriarComissao(rec, req)

	require.Equal(t, 201, rec.Code)
	require.Len(t, repo.saved, 1)

	saved := repo.saved[0]
	assert.True(t, saved.ClientsFirstPurchase)
	assert.Equal(t, "12345678000199", saved.ClientCNPJ)
	assert.Equal(t, "52998224725", saved.SellerCPF)

	// efeitos colaterais: cliente vira comprador, vendedor pontua
	assert.Equal(t, 1, clientes.porCPF["12345678000199"].Status)
	require.Len(t, vendedores.incrementos, 1)
	assert.Equal(t, incremento{"52998224725", 5}, vendedores.incrementos[0])

	// segunda comissão do mesmo cliente já não é primeira compra
	mock.ExpectBegin()
	mock.ExpectCommit()

	req = comContexto(httptest.NewRequest("POST", "/commissions", strings.NewReader(body)), 1, true)
	rec = httptest.NewRecorder()
	h.CriarComissao(rec, req)

	require.Equal(t, 201, rec.Code)
	require.Len(t, repo.saved, 2)
	assert.False(t, repo.saved[1].ClientsFirstPurchase)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCriarComissaoClienteDesconhecidoNaoEhErro(t *testing.T) {
	gdb, mock := setupMockDB(t)

	repo := &fakeComissoes{}
	vendedores := &fakeVendedores{}
	h := &Handler{
		DB:         gdb,
		Repository: repo,
		Clients:    &fakeClientes{porCPF: map[string]*client.Client{}},
		Products:   &fakeProdutos{},
		Sellers:    vendedores,
		Log:        logrus.New(),
	}

	mock.ExpectBegin()
	mock.ExpectCommit()

	// sem scorePoints no corpo: incremento default de zero
	body := `{"date":"2024-03-10T12:00:00Z","value":50,"commissionCut":5,` +
		`"clientCNPJ":"00000000000000","productId":1,"sellerCPF":"52998224725"}`
	req := comContexto(httptest.NewRequest("POST", "/commissions", strings.NewReader(body)), 1, true)
	rec := httptest.NewRecorder()
	h.CriarComissao(rec, req)

	require.Equal(t, 201, rec.Code)
	require.Len(t, repo.saved, 1)
	assert.False(t, repo.saved[0].ClientsFirstPurchase)
	require.Len(t, vendedores.incrementos, 1)
	assert.Zero(t, vendedores.incrementos[0].pontos)
}

// ---- listagem ----

func TestNaoAdminSobrepoeFiltroDeVendedor(t *testing.T) {
	repo := &fakeComissoes{}
	vendedores := &fakeVendedores{porID: map[uint]*seller.Seller{
		7: {ID: 7, CPF: "99988877766"},
	}}
	h := &Handler{
		Repository: repo,
		Clients:    &fakeClientes{},
		Products:   &fakeProdutos{},
		Sellers:    vendedores,
		Log:        logrus.New(),
	}

	req := comContexto(httptest.NewRequest("GET", "/commissions?seller_cpf=11122233344", nil), 7, false)
	rec := httptest.NewRecorder()
	h.ListarComissoes(rec, req)

	require.Equal(t, 200, rec.Code)
	require.NotNil(t, repo.lastFilter)
	// a restrição de acesso vence o filtro explícito
	assert.Equal(t, "99988877766", repo.lastFilter.SellerCPF)
}

func TestProductStatusSobrepoeProductID(t *testing.T) {
	repo := &fakeComissoes{}
	produtos := &fakeProdutos{porStatus: map[int][]product.Product{
		product.StatusNew: {{ID: 8}, {ID: 9}},
	}}
	h := &Handler{
		Repository: repo,
		Clients:    &fakeClientes{},
		Products:   produtos,
		Sellers:    &fakeVendedores{},
		Log:        logrus.New(),
	}

	req := comContexto(httptest.NewRequest("GET", "/commissions?product_id=5&product_status=new", nil), 1, true)
	rec := httptest.NewRecorder()
	h.ListarComissoes(rec, req)

	require.Equal(t, 200, rec.Code)
	require.NotNil(t, repo.lastFilter)
	// o conjunto de ids do status vence o product_id explícito
	assert.Equal(t, []uint{8, 9}, repo.lastFilter.ProductIDs)
}

func TestPaginacaoCalculaOffset(t *testing.T) {
	repo := &fakeComissoes{}
	h := &Handler{
		Repository: repo,
		Clients:    &fakeClientes{},
		Products:   &fakeProdutos{},
		Sellers:    &fakeVendedores{},
		Log:        logrus.New(),
	}

	req := comContexto(httptest.NewRequest("GET", "/commissions?page=3&limit=10", nil), 1, true)
	rec := httptest.NewRecorder()
	h.ListarComissoes(rec, req)

	require.Equal(t, 200, rec.Code)
	require.NotNil(t, repo.lastFilter)
	assert.Equal(t, 20, repo.lastFilter.Offset)
	assert.Equal(t, 10, repo.lastFilter.Limit)
}

func TestFirstPurchaseEDatasEntramNoFiltro(t *testing.T) {
	repo := &fakeComissoes{}
	h := &Handler{
		Repository: repo,
		Clients:    &fakeClientes{},
		Products:   &fakeProdutos{},
		Sellers:    &fakeVendedores{},
		Log:        logrus.New(),
	}

	req := comContexto(httptest.NewRequest("GET", "/commissions?firstPurchase=true&after=2024-01-01", nil), 1, true)
	rec := httptest.NewRecorder()
	h.ListarComissoes(rec, req)

	require.Equal(t, 200, rec.Code)
	require.NotNil(t, repo.lastFilter)
	assert.True(t, repo.lastFilter.FirstPurchase)
	require.NotNil(t, repo.lastFilter.Start)
	require.NotNil(t, repo.lastFilter.End)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *repo.lastFilter.Start)
}

// ---- estatísticas ----

func TestEstatisticasRestringemNaoAdmin(t *testing.T) {
	repo := &fakeComissoes{list: []Commission{
		{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), SellerCPF: "99988877766", Value: 100},
		{Date: time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), SellerCPF: "11122233344", Value: 900},
	}}
	vendedores := &fakeVendedores{porID: map[uint]*seller.Seller{
		7: {ID: 7, CPF: "99988877766"},
	}}
	h := &Handler{
		Repository: repo,
		Clients:    &fakeClientes{},
		Products:   &fakeProdutos{},
		Sellers:    vendedores,
		Log:        logrus.New(),
	}

	req := comContexto(httptest.NewRequest("GET", "/commissions/stats?sale_qty_after=2024-01-01", nil), 7, false)
	rec := httptest.NewRecorder()
	h.EstatisticasComissoes(rec, req)

	require.Equal(t, 200, rec.Code)

	var stats Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.NotNil(t, stats.SaleQty)
	assert.Equal(t, 1, *stats.SaleQty)
	assert.Nil(t, stats.CommValue)
	assert.Nil(t, stats.SaleValue)
}

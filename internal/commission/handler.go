package commission

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Byte-Boost/Backend-Otter/internal/auth"
	"github.com/Byte-Boost/Backend-Otter/internal/client"
	"github.com/Byte-Boost/Backend-Otter/internal/product"
	"github.com/Byte-Boost/Backend-Otter/internal/seller"
	"github.com/Byte-Boost/Backend-Otter/internal/utils"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type createCommissionRequest struct {
	Date          time.Time `json:"date"`
	Value         float64   `json:"value"`
	CommissionCut float64   `json:"commissionCut"`
	PaymentMethod string    `json:"paymentMethod"`
	ClientCNPJ    string    `json:"clientCNPJ"`
	ProductID     uint      `json:"productId"`
	SellerCPF     string    `json:"sellerCPF"`
	// ScorePoints só alimenta o incremento de score do vendedor; não é persistido.
	ScorePoints float64 `json:"scorePoints"`
}

type updateCommissionRequest struct {
	Date          time.Time `json:"date"`
	Value         float64   `json:"value"`
	CommissionCut float64   `json:"commissionCut"`
	PaymentMethod string    `json:"paymentMethod"`
	// clientId/sellerId vêm de uma versão antiga do schema; as colunas reais
	// são client_cnpj/seller_cpf, então atualizar essas referências é um no-op.
	ClientID  uint `json:"clientId"`
	ProductID uint `json:"productId"`
	SellerID  uint `json:"sellerId"`
}

// Handler orquestra o fluxo de comissões; fala com os repositórios de
// cliente, produto e vendedor para os efeitos colaterais e filtros.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Clients    client.Repository
	Products   product.Repository
	Sellers    seller.Repository
	Log        *logrus.Logger
}

func NewHandler(db *gorm.DB, log *logrus.Logger) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Clients:    client.NewRepository(),
		Products:   product.NewRepository(),
		Sellers:    seller.NewRepository(),
		Log:        log,
	}
}

// CriarComissao registra a comissão com a foto de primeira compra do cliente
// e, na mesma transação, marca o cliente como comprador e soma os pontos ao
// score do vendedor.
func (h *Handler) CriarComissao(w http.ResponseWriter, r *http.Request) {
	var req createCommissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	// Documentos sempre gravados somente com dígitos
	req.ClientCNPJ = utils.SomenteDigitos(req.ClientCNPJ)
	req.SellerCPF = utils.SomenteDigitos(req.SellerCPF)

	// Cliente desconhecido segue como não-primeira-compra, não como erro.
	firstPurchase := false
	if cli, err := h.Clients.BuscarPorCPF(h.DB, req.ClientCNPJ); err == nil && cli.Status == 0 {
		firstPurchase = true
	}

	c := Commission{
		Date:                 req.Date,
		Value:                req.Value,
		CommissionCut:        req.CommissionCut,
		PaymentMethod:        req.PaymentMethod,
		ClientsFirstPurchase: firstPurchase,
		ClientCNPJ:           req.ClientCNPJ,
		ProductID:            req.ProductID,
		SellerCPF:            req.SellerCPF,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := h.Repository.Salvar(tx, &c); err != nil {
			return err
		}
		if err := h.Clients.MarcarComoComprador(tx, req.ClientCNPJ); err != nil {
			return err
		}
		return h.Sellers.IncrementarScore(tx, req.SellerCPF, req.ScorePoints)
	})
	if err != nil {
		h.Log.WithFields(logrus.Fields{"entity": "commission", "op": "create", "err": err}).Error("falha no store")
		http.Error(w, "erro ao registrar comissão", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// montarFiltro traduz a query string no ListFilter, na ordem de precedência
// da API: filtros explícitos, depois a restrição de não-admin, depois
// product_status (que sobrepõe product_id; o último filtro aplicado vence).
func (h *Handler) montarFiltro(r *http.Request) (ListFilter, error) {
	q := r.URL.Query()
	var f ListFilter

	if v := q.Get("product_id"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			f.ProductID = uint(id)
		}
	}
	f.ClientCNPJ = q.Get("client_cnpj")
	f.SellerCPF = q.Get("seller_cpf")

	// Não-admin enxerga apenas as próprias comissões, mesmo que tenha
	// passado seller_cpf na query.
	if !auth.IsAdmin(r.Context()) {
		s, err := h.Sellers.BuscarPorID(h.DB, auth.UserID(r.Context()))
		if err != nil {
			return f, err
		}
		f.SellerCPF = s.CPF
	}

	if v := q.Get("product_status"); v != "" {
		status := product.StatusOld
		if v == "new" {
			status = product.StatusNew
		}
		products, err := h.Products.BuscarPorStatus(h.DB, status)
		if err != nil {
			return f, err
		}
		ids := make([]uint, 0, len(products))
		for _, p := range products {
			ids = append(ids, p.ID)
		}
		f.ProductIDs = ids
	}

	if q.Get("firstPurchase") == "true" {
		f.FirstPurchase = true
	}

	after, before := q.Get("after"), q.Get("before")
	if after != "" || before != "" {
		start, end := janela(after, before, time.Now())
		f.Start, f.End = &start, &end
	}

	page := 1
	if v := q.Get("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			page = p
		}
	}
	if v := q.Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil && limit > 0 {
			f.Limit = limit
			f.Offset = (page - 1) * limit
		}
	}

	return f, nil
}

// ListarComissoes retorna as comissões do filtro, ordenadas por data.
func (h *Handler) ListarComissoes(w http.ResponseWriter, r *http.Request) {
	f, err := h.montarFiltro(r)
	if err != nil {
		h.Log.WithFields(logrus.Fields{"entity": "commission", "op": "list", "err": err}).Error("falha no store")
		http.Error(w, "erro ao listar comissões", http.StatusBadRequest)
		return
	}

	list, err := h.Repository.Listar(h.DB, f)
	if err != nil {
		h.Log.WithFields(logrus.Fields{"entity": "commission", "op": "list", "err": err}).Error("falha no store")
		http.Error(w, "erro ao listar comissões", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID retorna a comissão ou corpo nulo quando não existe. Diferente da
// listagem, não há restrição de dono na consulta direta por ID.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			json.NewEncoder(w).Encode(nil)
			return
		}
		h.Log.WithFields(logrus.Fields{"entity": "commission", "op": "get", "err": err}).Error("falha no store")
		http.Error(w, "erro ao buscar comissão", http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(obj)
}

// AtualizarComissao altera a lista fixa de campos editáveis.
func (h *Handler) AtualizarComissao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req updateCommissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	dados := Commission{
		Date:          req.Date,
		Value:         req.Value,
		CommissionCut: req.CommissionCut,
		PaymentMethod: req.PaymentMethod,
		ProductID:     req.ProductID,
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		h.Log.WithFields(logrus.Fields{"entity": "commission", "op": "update", "err": err}).Error("falha no store")
		http.Error(w, "erro ao atualizar comissão", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DeletarComissao remove uma comissão
func (h *Handler) DeletarComissao(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		h.Log.WithFields(logrus.Fields{"entity": "commission", "op": "delete", "err": err}).Error("falha no store")
		http.Error(w, "erro ao excluir comissão", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)
}

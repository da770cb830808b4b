package product

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type createProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      int    `json:"status"`
}

type updateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Status      int     `json:"status"`
	Percentage  float64 `json:"percentage"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Log        *logrus.Logger
}

func NewHandler(db *gorm.DB, log *logrus.Logger) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Log:        log,
	}
}

// CriarProduto cadastra um novo produto. Percentage não é aceito na criação,
// apenas via atualização.
func (h *Handler) CriarProduto(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	p := Product{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	}

	if err := h.Repository.Salvar(h.DB, &p); err != nil {
		h.Log.WithFields(logrus.Fields{"entity": "product", "op": "create", "err": err}).Error("falha no store")
		http.Error(w, "erro ao salvar produto", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// filtrarProdutos aplica os filtros de query em memória.
// Um valor de status desconhecido não casa com nenhum registro e derruba a
// lista inteira; comportamento herdado da primeira versão da API, mantido
// até os consumidores migrarem.
func filtrarProdutos(products []Product, status, startsWith string) []Product {
	out := products

	if status != "" {
		want := -1
		switch status {
		case "new":
			want = StatusNew
		case "old":
			want = StatusOld
		}
		filtered := make([]Product, 0, len(out))
		for _, p := range out {
			if p.Status == want {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}

	if startsWith != "" {
		prefix := strings.ToLower(startsWith)
		filtered := make([]Product, 0, len(out))
		for _, p := range out {
			if strings.HasPrefix(strings.ToLower(p.Name), prefix) {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}

	return out
}

// ListarProdutos retorna os produtos com filtros opcionais status e startsWith.
func (h *Handler) ListarProdutos(w http.ResponseWriter, r *http.Request) {
	products, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		h.Log.WithFields(logrus.Fields{"entity": "product", "op": "list", "err": err}).Error("falha no store")
		http.Error(w, "erro ao listar produtos", http.StatusBadRequest)
		return
	}

	q := r.URL.Query()
	products = filtrarProdutos(products, q.Get("status"), q.Get("startsWith"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// BuscarPorID retorna o produto ou corpo nulo quando não existe.
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
		h.Log.WithFields(logrus.Fields{"entity": "product", "op": "get", "err": err}).Error("falha no store")
		http.Error(w, "erro ao buscar produto", http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(obj)
}

// AtualizarProduto altera a lista fixa de campos editáveis.
func (h *Handler) AtualizarProduto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req updateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	dados := Product{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Percentage:  req.Percentage,
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		h.Log.WithFields(logrus.Fields{"entity": "product", "op": "update", "err": err}).Error("falha no store")
		http.Error(w, "erro ao atualizar produto", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DeletarProduto remove um produto
func (h *Handler) DeletarProduto(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		h.Log.WithFields(logrus.Fields{"entity": "product", "op": "delete", "err": err}).Error("falha no store")
		http.Error(w, "erro ao excluir produto", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)
}

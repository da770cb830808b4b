package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type createClientRequest struct {
	Name    string  `json:"name"`
	CPF     string  `json:"cpf"`
	Segment string  `json:"segment"`
	Bonus   float64 `json:"bonus"`
}

// Handler encapsula DB, repository e logger
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Log        *logrus.Logger
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, log *logrus.Logger) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Log:        log,
	}
}

// CriarCliente cadastra um novo cliente. O cpf é gravado como veio no corpo;
// a normalização para somente dígitos acontece na criação de comissões.
func (h *Handler) CriarCliente(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	c := Client{
		Name:    req.Name,
		CPF:     req.CPF,
		Segment: req.Segment,
		Bonus:   req.Bonus,
	}

	if err := h.Repository.Salvar(h.DB, &c); err != nil {
		h.Log.WithFields(logrus.Fields{"entity": "client", "op": "create", "err": err}).Error("falha no store")
		http.Error(w, "erro ao salvar cliente", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// ListarClientes retorna todos os clientes, sem filtro.
func (h *Handler) ListarClientes(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		h.Log.WithFields(logrus.Fields{"entity": "client", "op": "list", "err": err}).Error("falha no store")
		http.Error(w, "erro ao listar clientes", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(clients)
}

// BuscarPorID retorna o cliente ou corpo nulo quando não existe (sem 404).
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
		h.Log.WithFields(logrus.Fields{"entity": "client", "op": "get", "err": err}).Error("falha no store")
		http.Error(w, "erro ao buscar cliente", http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(obj)
}

// AtualizarCliente altera a lista fixa de campos editáveis.
func (h *Handler) AtualizarCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	dados := Client{
		Name:    req.Name,
		CPF:     req.CPF,
		Segment: req.Segment,
		Bonus:   req.Bonus,
	}
	if err := h.Repository.Atualizar(h.DB, uint(id), &dados); err != nil {
		h.Log.WithFields(logrus.Fields{"entity": "client", "op": "update", "err": err}).Error("falha no store")
		http.Error(w, "erro ao atualizar cliente", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DeletarCliente remove um cliente
func (h *Handler) DeletarCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, uint(id)); err != nil {
		h.Log.WithFields(logrus.Fields{"entity": "client", "op": "delete", "err": err}).Error("falha no store")
		http.Error(w, "erro ao excluir cliente", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)
}

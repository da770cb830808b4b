package seller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Byte-Boost/Backend-Otter/internal/auth"
	"github.com/Byte-Boost/Backend-Otter/internal/utils"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type createSellerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	CPF     string `json:"cpf"`
	Senha   string `json:"password"`
	IsAdmin bool   `json:"isAdmin"`
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

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorEmailOuCPF(h.DB, req.Login)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarSenha(user.Senha, req.Password) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateAccessToken(user.ID, user.IsAdmin)
	if err != nil {
		h.Log.WithFields(logrus.Fields{"entity": "seller", "op": "login", "err": err}).Error("falha ao gerar token")
		http.Error(w, "erro ao gerar token", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// CriarVendedor cadastra um vendedor com senha hasheada (rota de admin).
func (h *Handler) CriarVendedor(w http.ResponseWriter, r *http.Request) {
	var req createSellerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusBadRequest)
		return
	}

	s := Seller{
		Name:    req.Name,
		Email:   req.Email,
		CPF:     req.CPF,
		Senha:   hash,
		IsAdmin: req.IsAdmin,
	}

	if err := h.Repository.Salvar(h.DB, &s); err != nil {
		h.Log.WithFields(logrus.Fields{"entity": "seller", "op": "create", "err": err}).Error("falha no store")
		http.Error(w, "erro ao salvar vendedor", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(s)
}

// ListarVendedores retorna todos para admin; não-admin vê apenas o próprio.
func (h *Handler) ListarVendedores(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if auth.IsAdmin(r.Context()) {
		sellers, err := h.Repository.ListarTodos(h.DB)
		if err != nil {
			h.Log.WithFields(logrus.Fields{"entity": "seller", "op": "list", "err": err}).Error("falha no store")
			http.Error(w, "erro ao listar vendedores", http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(sellers)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, auth.UserID(r.Context()))
	if err != nil {
		h.Log.WithFields(logrus.Fields{"entity": "seller", "op": "list", "err": err}).Error("falha no store")
		http.Error(w, "erro ao listar vendedores", http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode([]Seller{*obj})
}

// BuscarPorID retorna um vendedor pelo ID; não-admin só enxerga a si mesmo.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !auth.IsAdmin(r.Context()) && uint(id) != auth.UserID(r.Context()) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		h.Log.WithFields(logrus.Fields{"entity": "seller", "op": "get", "err": err}).Error("falha no store")
		http.Error(w, "erro ao buscar vendedor", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(obj)
}

package commission

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Byte-Boost/Backend-Otter/internal/auth"
	"github.com/sirupsen/logrus"
)

// Stats agrega métricas independentes; cada uma só aparece na resposta se a
// respectiva janela de datas foi pedida na query.
type Stats struct {
	CommValue *float64 `json:"commValue,omitempty"`
	SaleValue *float64 `json:"saleValue,omitempty"`
	SaleQty   *int     `json:"saleQty,omitempty"`
}

func filtrarPorJanela(comms []Commission, start, end time.Time) []Commission {
	out := make([]Commission, 0, len(comms))
	for _, c := range comms {
		if dentroDaJanela(c.Date, start, end) {
			out = append(out, c)
		}
	}
	return out
}

// calcularStats computa as métricas sobre o conjunto já restrito por
// vendedor/produto/cliente. now ancora o default do limite superior.
func calcularStats(comms []Commission, q map[string]string, now time.Time) Stats {
	var stats Stats

	if q["comm_value_after"] != "" || q["comm_value_before"] != "" {
		start, end := janela(q["comm_value_after"], q["comm_value_before"], now)
		total := 0.0
		for _, c := range filtrarPorJanela(comms, start, end) {
			total += c.CommissionCut
		}
		stats.CommValue = &total
	}

	if q["sale_value_after"] != "" || q["sale_value_before"] != "" {
		start, end := janela(q["sale_value_after"], q["sale_value_before"], now)
		total := 0.0
		for _, c := range filtrarPorJanela(comms, start, end) {
			total += c.Value
		}
		stats.SaleValue = &total
	}

	if q["sale_qty_after"] != "" || q["sale_qty_before"] != "" {
		start, end := janela(q["sale_qty_after"], q["sale_qty_before"], now)
		qty := len(filtrarPorJanela(comms, start, end))
		stats.SaleQty = &qty
	}

	return stats
}

// EstatisticasComissoes carrega todas as comissões, aplica os filtros de
// igualdade em memória (mesma restrição de não-admin da listagem) e computa
// até três métricas, cada uma sobre a própria janela de datas.
func (h *Handler) EstatisticasComissoes(w http.ResponseWriter, r *http.Request) {
	comms, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		h.Log.WithFields(logrus.Fields{"entity": "commission", "op": "stats", "err": err}).Error("falha no store")
		http.Error(w, "erro ao calcular estatísticas", http.StatusBadRequest)
		return
	}

	q := r.URL.Query()

	if !auth.IsAdmin(r.Context()) {
		s, err := h.Sellers.BuscarPorID(h.DB, auth.UserID(r.Context()))
		if err != nil {
			h.Log.WithFields(logrus.Fields{"entity": "commission", "op": "stats", "err": err}).Error("falha no store")
			http.Error(w, "erro ao calcular estatísticas", http.StatusBadRequest)
			return
		}
		comms = filtrar(comms, func(c Commission) bool { return c.SellerCPF == s.CPF })
	}

	if v := q.Get("product_id"); v != "" {
		if id, err := strconv.Atoi(v); err == nil {
			comms = filtrar(comms, func(c Commission) bool { return c.ProductID == uint(id) })
		}
	}
	if v := q.Get("client_cnpj"); v != "" {
		comms = filtrar(comms, func(c Commission) bool { return c.ClientCNPJ == v })
	}
	if v := q.Get("seller_cpf"); v != "" {
		comms = filtrar(comms, func(c Commission) bool { return c.SellerCPF == v })
	}

	params := map[string]string{}
	for _, k := range []string{
		"comm_value_after", "comm_value_before",
		"sale_value_after", "sale_value_before",
		"sale_qty_after", "sale_qty_before",
	} {
		params[k] = q.Get(k)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(calcularStats(comms, params, time.Now()))
}

func filtrar(comms []Commission, keep func(Commission) bool) []Commission {
	out := make([]Commission, 0, len(comms))
	for _, c := range comms {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

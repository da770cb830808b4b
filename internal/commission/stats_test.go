package commission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amostraComissoes() []Commission {
	return []Commission{
		{Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), Value: 100, CommissionCut: 10},
		{Date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), Value: 200, CommissionCut: 20},
		{Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Value: 400, CommissionCut: 40},
	}
}

func TestApenasMetricaPedidaApareceNaResposta(t *testing.T) {
	now := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	stats := calcularStats(amostraComissoes(), map[string]string{
		"sale_qty_after": "2024-01-01",
	}, now)

	require.NotNil(t, stats.SaleQty)
	assert.Equal(t, 3, *stats.SaleQty)
	assert.Nil(t, stats.CommValue)
	assert.Nil(t, stats.SaleValue)
}

func TestCadaMetricaUsaSuaPropriaJanela(t *testing.T) {
	now := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	stats := calcularStats(amostraComissoes(), map[string]string{
		"comm_value_after":  "2024-02-01",
		"sale_value_before": "2024-01-31",
		"sale_qty_after":    "2024-03-01",
	}, now)

	require.NotNil(t, stats.CommValue)
	assert.Equal(t, 60.0, *stats.CommValue) // fevereiro + março

	require.NotNil(t, stats.SaleValue)
	assert.Equal(t, 100.0, *stats.SaleValue) // só janeiro

	require.NotNil(t, stats.SaleQty)
	assert.Equal(t, 1, *stats.SaleQty) // só março
}

func TestSemJanelasNenhumaMetrica(t *testing.T) {
	stats := calcularStats(amostraComissoes(), map[string]string{}, time.Now())
	assert.Nil(t, stats.CommValue)
	assert.Nil(t, stats.SaleValue)
	assert.Nil(t, stats.SaleQty)
}

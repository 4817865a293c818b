package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ondulado/internal/domain"
)

func novoOnduladoE230() domain.Ondulado {
	return domain.Ondulado{
		ID: "1",
		OnduladoFields: domain.OnduladoFields{
			Nome:         "Ondulado E230",
			Fornecedor:   domain.FornecedorMicropack,
			Largura:      1000,
			Altura:       800,
			Gramatura:    230,
			TipoOnda:     domain.OndaE,
			Quantidade:   50,
			CustoFolha:   2.50,
			UsoDestinado: "Caixas",
		},
	}
}

func TestValorTotal(t *testing.T) {
	o := novoOnduladoE230()
	assert.True(t, decimal.RequireFromString("125.00").Equal(o.ValorTotal()))

	o.Quantidade = 100
	assert.True(t, decimal.RequireFromString("250").Equal(o.ValorTotal()))
}

func TestValorTotal_NoFloatDrift(t *testing.T) {
	o := domain.Ondulado{OnduladoFields: domain.OnduladoFields{Quantidade: 3, CustoFolha: 0.1}}
	assert.Equal(t, "0.30", o.ValorTotal().StringFixed(2))
}

func TestNewView_FormatsWithPrefix(t *testing.T) {
	view := domain.NewView(novoOnduladoE230())

	assert.Equal(t, 125.0, view.ValorTotal)
	assert.Equal(t, "R$ 125.00", view.ValorTotalFormatado)
	assert.Equal(t, "R$ 2.50", view.CustoFolhaFormatado)
}

func TestOndulado_JSONLayoutIsFlat(t *testing.T) {
	raw, err := json.Marshal(novoOnduladoE230())
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))

	for _, key := range []string{"id", "nome", "fornecedor", "largura", "altura", "gramatura", "tipoOnda", "quantidade", "custoFolha", "usoDestinado"} {
		assert.Contains(t, m, key)
	}
	assert.Len(t, m, 10)
	assert.EqualValues(t, 2.5, m["custoFolha"])
	assert.NotContains(t, m, "valorTotal")
}

func TestDefaultFields(t *testing.T) {
	f := domain.DefaultFields()

	assert.Equal(t, domain.FornecedorMicropack, f.Fornecedor)
	assert.Equal(t, 230.0, f.Gramatura)
	assert.Equal(t, domain.OndaE, f.TipoOnda)
	assert.Zero(t, f.Quantidade)
	assert.Zero(t, f.CustoFolha)
	assert.Empty(t, f.Nome)
}

func TestOnduladoForm_FieldsAppliesDefaults(t *testing.T) {
	var form domain.OnduladoForm
	require.NoError(t, json.Unmarshal([]byte(`{"nome":"Chapa B","largura":500,"altura":400,"quantidade":10,"custoFolha":1.2}`), &form))

	f := form.Fields()
	assert.Equal(t, "Chapa B", f.Nome)
	assert.Equal(t, domain.FornecedorMicropack, f.Fornecedor)
	assert.Equal(t, 230.0, f.Gramatura)
	assert.Equal(t, domain.OndaE, f.TipoOnda)
	assert.Equal(t, 10, f.Quantidade)
}

func TestFormFromFields_RoundTrip(t *testing.T) {
	fields := novoOnduladoE230().OnduladoFields
	fields.Fornecedor = domain.FornecedorOutros
	fields.TipoOnda = domain.OndaBC

	assert.Equal(t, fields, domain.FormFromFields(fields).Fields())
}

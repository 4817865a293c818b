package domain

import (
	"github.com/shopspring/decimal"
)

// Fornecedor identifica a origem das chapas.
type Fornecedor string

const (
	FornecedorMicropack Fornecedor = "MICROPACK"
	FornecedorOutros    Fornecedor = "OUTROS"
)

// TipoOnda é o perfil da onda do papelão.
type TipoOnda string

const (
	OndaE  TipoOnda = "E"
	OndaB  TipoOnda = "B"
	OndaC  TipoOnda = "C"
	OndaBC TipoOnda = "BC"
)

// Valores padrão do formulário.
const (
	DefaultFornecedor = FornecedorMicropack
	DefaultGramatura  = 230.0
	DefaultTipoOnda   = OndaE
)

// MoedaPrefixo é o prefixo fixo usado na exibição de valores.
const MoedaPrefixo = "R$ "

// OnduladoFields são os campos editáveis de um ondulado (tudo menos o ID).
type OnduladoFields struct {
	Nome         string     `json:"nome" example:"Ondulado E230"`
	Fornecedor   Fornecedor `json:"fornecedor" example:"MICROPACK"`
	Largura      float64    `json:"largura" example:"1000"`  // mm
	Altura       float64    `json:"altura" example:"800"`    // mm
	Gramatura    float64    `json:"gramatura" example:"230"` // g/m²
	TipoOnda     TipoOnda   `json:"tipoOnda" example:"E"`
	Quantidade   int        `json:"quantidade" example:"50"` // folhas
	CustoFolha   float64    `json:"custoFolha" example:"2.5"`
	UsoDestinado string     `json:"usoDestinado" example:"Caixas"`
}

// Ondulado é o registro de estoque persistido. Os campos são achatados no JSON.
type Ondulado struct {
	ID string `json:"id" example:"7f1c0d2e-4b4a-4f5e-9a43-0e6f3d1b2c11"`
	OnduladoFields
}

// DefaultFields devolve o formulário vazio: MICROPACK, 230 g/m², onda E, numéricos zerados.
func DefaultFields() OnduladoFields {
	return OnduladoFields{
		Fornecedor: DefaultFornecedor,
		Gramatura:  DefaultGramatura,
		TipoOnda:   DefaultTipoOnda,
	}
}

// ValorTotal é quantidade × custo por folha, arredondado a 2 casas.
func (o Ondulado) ValorTotal() decimal.Decimal {
	return decimal.NewFromFloat(o.CustoFolha).
		Mul(decimal.NewFromInt(int64(o.Quantidade))).
		Round(2)
}

// OnduladoView é o registro decorado com os valores derivados, usado na listagem.
type OnduladoView struct {
	Ondulado
	ValorTotal          float64 `json:"valorTotal" example:"125"`
	CustoFolhaFormatado string  `json:"custoFolhaFormatado" example:"R$ 2.50"`
	ValorTotalFormatado string  `json:"valorTotalFormatado" example:"R$ 125.00"`
}

// NewView calcula os valores derivados de o.
func NewView(o Ondulado) OnduladoView {
	total := o.ValorTotal()
	return OnduladoView{
		Ondulado:            o,
		ValorTotal:          total.InexactFloat64(),
		CustoFolhaFormatado: FormatMoeda(decimal.NewFromFloat(o.CustoFolha)),
		ValorTotalFormatado: FormatMoeda(total),
	}
}

// FormatMoeda formata v com duas casas e o prefixo fixo ("R$ 125.00").
func FormatMoeda(v decimal.Decimal) string {
	return MoedaPrefixo + v.StringFixed(2)
}

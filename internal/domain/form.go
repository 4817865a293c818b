package domain

// OnduladoForm é o payload do formulário de criação/edição.
// Ponteiros distinguem campo ausente de campo zerado; as regras ficam nas tags `validate`.
type OnduladoForm struct {
	Nome         *string  `json:"nome" validate:"required,notblank" example:"Ondulado E230"`
	Fornecedor   *string  `json:"fornecedor" validate:"omitempty,oneof=MICROPACK OUTROS" example:"MICROPACK"`
	Largura      *float64 `json:"largura" validate:"required,gte=0" example:"1000"`
	Altura       *float64 `json:"altura" validate:"required,gte=0" example:"800"`
	Gramatura    *float64 `json:"gramatura" validate:"omitempty,gte=0" example:"230"`
	TipoOnda     *string  `json:"tipoOnda" validate:"omitempty,oneof=E B C BC" example:"E"`
	Quantidade   *int     `json:"quantidade" validate:"required,gte=0" example:"50"`
	CustoFolha   *float64 `json:"custoFolha" validate:"required,gte=0" example:"2.5"`
	UsoDestinado *string  `json:"usoDestinado" example:"Caixas"`
}

// FormFromFields monta um formulário totalmente preenchido a partir de campos existentes.
func FormFromFields(f OnduladoFields) OnduladoForm {
	fornecedor := string(f.Fornecedor)
	tipoOnda := string(f.TipoOnda)
	return OnduladoForm{
		Nome:         &f.Nome,
		Fornecedor:   &fornecedor,
		Largura:      &f.Largura,
		Altura:       &f.Altura,
		Gramatura:    &f.Gramatura,
		TipoOnda:     &tipoOnda,
		Quantidade:   &f.Quantidade,
		CustoFolha:   &f.CustoFolha,
		UsoDestinado: &f.UsoDestinado,
	}
}

// Fields converte o formulário (já validado) em campos, aplicando os padrões aos opcionais ausentes.
func (f OnduladoForm) Fields() OnduladoFields {
	out := DefaultFields()
	if f.Nome != nil {
		out.Nome = *f.Nome
	}
	if f.Fornecedor != nil && *f.Fornecedor != "" {
		out.Fornecedor = Fornecedor(*f.Fornecedor)
	}
	if f.Largura != nil {
		out.Largura = *f.Largura
	}
	if f.Altura != nil {
		out.Altura = *f.Altura
	}
	if f.Gramatura != nil {
		out.Gramatura = *f.Gramatura
	}
	if f.TipoOnda != nil && *f.TipoOnda != "" {
		out.TipoOnda = TipoOnda(*f.TipoOnda)
	}
	if f.Quantidade != nil {
		out.Quantidade = *f.Quantidade
	}
	if f.CustoFolha != nil {
		out.CustoFolha = *f.CustoFolha
	}
	if f.UsoDestinado != nil {
		out.UsoDestinado = *f.UsoDestinado
	}
	return out
}

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"ondulado/internal/domain"
	apperror "ondulado/internal/errors"
)

// Validator valida os formulários na fronteira de edição, antes de chegar ao serviço.
type Validator struct {
	v *validator.Validate
}

// New cria o validador, registrando o nome JSON dos campos e a regra notblank.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Mensagens usam o nome do campo no JSON ("custoFolha"), não o nome Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	return &Validator{v: v}
}

// ValidateForm aplica as regras do formulário e devolve um ValidationError com o detalhe por campo.
func (val *Validator) ValidateForm(form domain.OnduladoForm) error {
	err := val.v.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.NewInternalError("Falha ao validar formulário.", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return apperror.NewFieldValidationError("Formulário inválido. Verifique os campos destacados.", fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "Preencha este campo."
	case "gte":
		return fmt.Sprintf("O valor deve ser maior ou igual a %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Valor inválido. Opções: %s.", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("Valor inválido (%s).", fe.Tag())
	}
}

package errors

import (
	"fmt"
	"net/http"
)

// AppError é a interface central para todos os erros customizados do controle de ondulados.
// Ela permite que o código externo (Handler, CLI) acesse a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION_ERROR", "NOT_FOUND", "INTERNAL_ERROR")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Tipos de Erro de Domínio ---

// ValidationError representa falhas de validação do formulário.
// Fields guarda a mensagem por campo (chave = nome JSON do campo).
type ValidationError struct {
	Msg    string
	Fields map[string]string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NewFieldValidationError cria um erro de validação com o detalhe de cada campo rejeitado.
func NewFieldValidationError(msg string, fields map[string]string) AppError {
	return &ValidationError{Msg: msg, Fields: fields}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConfirmationRequiredError indica que a operação exige confirmação explícita do usuário.
type ConfirmationRequiredError struct {
	Msg string
}

func (e *ConfirmationRequiredError) Error() string {
	return fmt.Sprintf("Confirmação necessária: %s", e.Msg)
}
func (e *ConfirmationRequiredError) Category() string { return "CONFIRMATION_REQUIRED" }
func (e *ConfirmationRequiredError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ConfirmationRequiredError) Unwrap() error    { return nil }

// NewConfirmationRequiredError cria um erro para exclusões não confirmadas.
func NewConfirmationRequiredError(msg string) AppError {
	return &ConfirmationRequiredError{Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL ou do Redis)
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Erro Interno: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewStoreError é um atalho para criar um InternalError específico de falhas no armazenamento chave-valor.
func NewStoreError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (store): %s", msg, err.Error()), err)
}

// PersistenceError representa a falha ao gravar a coleção.
// Não é fatal: a coleção em memória continua sendo a fonte de verdade da sessão.
type PersistenceError struct {
	Msg string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("Falha de Persistência: %s", e.Msg)
	}
	return fmt.Sprintf("Falha de Persistência: %s: %s", e.Msg, e.Err.Error())
}
func (e *PersistenceError) Category() string { return "PERSISTENCE_WARNING" }
func (e *PersistenceError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *PersistenceError) Unwrap() error    { return e.Err }

// NewPersistenceError cria um aviso de falha de gravação.
func NewPersistenceError(msg string, err error) AppError {
	return &PersistenceError{Msg: msg, Err: err}
}

// CorruptDataError indica que o blob persistido não pôde ser desserializado.
// Raw guarda o conteúdo original para que possa ser preservado antes de ser sobrescrito.
type CorruptDataError struct {
	Key string
	Raw string
	Err error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("Dados corrompidos na chave %q: %s", e.Key, e.Err.Error())
}
func (e *CorruptDataError) Category() string { return "CORRUPT_DATA" }
func (e *CorruptDataError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *CorruptDataError) Unwrap() error    { return e.Err }

// NewCorruptDataError cria um erro de desserialização do blob persistido.
func NewCorruptDataError(key, raw string, err error) AppError {
	return &CorruptDataError{Key: key, Raw: raw, Err: err}
}

// --- Helper para o Handler (Tradução Final) ---

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP e corpo de resposta.
func MapToHTTPStatus(err error) (int, string, string) {
	if appErr, ok := err.(AppError); ok {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado (e.g., erro simples de pacote Go que não implementa AppError)
	// Tratar como erro interno genérico.
	return http.StatusInternalServerError, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}

package ondulado

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"ondulado/internal/api/response"
	"ondulado/internal/domain"
	apperror "ondulado/internal/errors"
	"ondulado/internal/pkg/logger"
	"ondulado/internal/service/onduladoservice"
)

// OnduladoService define o contrato que o Handler espera da camada de Serviço.
type OnduladoService interface {
	List(ctx context.Context) []domain.OnduladoView
	Get(ctx context.Context, id string) (domain.Ondulado, error)
	Create(ctx context.Context, fields domain.OnduladoFields) (domain.Ondulado, error)
	Update(ctx context.Context, id string, fields domain.OnduladoFields) (domain.Ondulado, bool, error)
	Remove(ctx context.Context, id string) (bool, error)
	Status() onduladoservice.Status
}

// FormValidator valida o payload antes de chegar ao serviço.
type FormValidator interface {
	ValidateForm(form domain.OnduladoForm) error
}

// Handler agrupa todos os métodos de Handler de ondulados.
type Handler struct {
	Service   OnduladoService
	Validator FormValidator
	Logger    logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service, o Validator e o Logger.
func NewHandler(svc OnduladoService, validator FormValidator, log logger.Logger) *Handler {
	return &Handler{
		Service:   svc,
		Validator: validator,
		Logger:    log,
	}
}

// ListOnduladosHandler lida com a requisição GET /v1/ondulados.
// @Summary Lista o estoque de ondulados
// @Description Retorna todos os ondulados na ordem de cadastro, com o valor total calculado.
// @Tags ondulados
// @Produce json
// @Success 200 {array} domain.OnduladoView "Lista de ondulados"
// @Router /ondulados [get]
func (h *Handler) ListOnduladosHandler(w http.ResponseWriter, r *http.Request) {
	response.Send(w, r, h.Logger, h.Service.List(r.Context()), nil, http.StatusOK)
}

// CreateOnduladoHandler lida com a requisição POST /v1/ondulados.
// @Summary Cadastra um ondulado
// @Description Valida o formulário e adiciona o registro ao fim do estoque.
// @Tags ondulados
// @Accept json
// @Produce json
// @Param ondulado body domain.OnduladoForm true "Dados do ondulado"
// @Success 201 {object} domain.OnduladoView "Ondulado criado"
// @Header 201 {string} X-Aviso-Persistencia "Presente quando a gravação falhou"
// @Failure 400 {object} domain.ErrorResponse "Formulário inválido"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /ondulados [post]
func (h *Handler) CreateOnduladoHandler(w http.ResponseWriter, r *http.Request) {
	var form domain.OnduladoForm
	if err := response.DecodeJSON(r, &form); err != nil {
		response.Send(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	if err := h.Validator.ValidateForm(form); err != nil {
		response.Send(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	created, err := h.Service.Create(r.Context(), form.Fields())
	if created.ID == "" {
		response.Send(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	response.Send(w, r, h.Logger, domain.NewView(created), err, http.StatusCreated)
}

// GetOnduladoHandler lida com a requisição GET /v1/ondulados/{id}.
// @Summary Obtém um ondulado por ID
// @Tags ondulados
// @Produce json
// @Param id path string true "ID do ondulado"
// @Success 200 {object} domain.OnduladoView "Ondulado encontrado"
// @Failure 404 {object} domain.ErrorResponse "Ondulado não encontrado"
// @Router /ondulados/{id} [get]
func (h *Handler) GetOnduladoHandler(w http.ResponseWriter, r *http.Request) {
	found, err := h.Service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		response.Send(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	response.Send(w, r, h.Logger, domain.NewView(found), nil, http.StatusOK)
}

// UpdateOnduladoHandler lida com a requisição PUT /v1/ondulados/{id}.
// @Summary Atualiza um ondulado
// @Description Substitui todos os campos do registro, mantendo sua posição no estoque.
// @Tags ondulados
// @Accept json
// @Produce json
// @Param id path string true "ID do ondulado"
// @Param ondulado body domain.OnduladoForm true "Novos dados do ondulado"
// @Success 200 {object} domain.OnduladoView "Ondulado atualizado"
// @Header 200 {string} X-Aviso-Persistencia "Presente quando a gravação falhou"
// @Failure 400 {object} domain.ErrorResponse "Formulário inválido"
// @Failure 404 {object} domain.ErrorResponse "Ondulado não encontrado"
// @Router /ondulados/{id} [put]
func (h *Handler) UpdateOnduladoHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var form domain.OnduladoForm
	if err := response.DecodeJSON(r, &form); err != nil {
		response.Send(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	if err := h.Validator.ValidateForm(form); err != nil {
		response.Send(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	updated, found, err := h.Service.Update(r.Context(), id, form.Fields())
	if !found {
		response.Send(w, r, h.Logger, nil, apperror.NewNotFoundError(fmt.Sprintf("Ondulado com ID %s não existe.", id)), http.StatusOK)
		return
	}
	response.Send(w, r, h.Logger, domain.NewView(updated), err, http.StatusOK)
}

// DeleteOnduladoHandler lida com a requisição DELETE /v1/ondulados/{id}.
// @Summary Exclui um ondulado
// @Description Exige confirmar=true. Excluir um ID inexistente não altera nada.
// @Tags ondulados
// @Param id path string true "ID do ondulado"
// @Param confirmar query bool true "Confirmação explícita da exclusão"
// @Success 204 "Ondulado excluído"
// @Failure 400 {object} domain.ErrorResponse "Confirmação ausente"
// @Router /ondulados/{id} [delete]
func (h *Handler) DeleteOnduladoHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirmar"))
	if !confirmed {
		response.Send(w, r, h.Logger, nil, apperror.NewConfirmationRequiredError("Deseja realmente excluir este ondulado? Envie confirmar=true."), http.StatusOK)
		return
	}

	_, err := h.Service.Remove(r.Context(), id)
	response.Send(w, r, h.Logger, nil, err, http.StatusNoContent)
}

// StatusHandler lida com a requisição GET /v1/status.
// @Summary Situação do estoque
// @Description Total de registros e resultado da última gravação.
// @Tags ondulados
// @Produce json
// @Success 200 {object} onduladoservice.Status
// @Router /status [get]
func (h *Handler) StatusHandler(w http.ResponseWriter, r *http.Request) {
	response.Send(w, r, h.Logger, h.Service.Status(), nil, http.StatusOK)
}

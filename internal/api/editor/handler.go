package editor

import (
	"context"
	"net/http"

	"ondulado/internal/api/response"
	"ondulado/internal/domain"
	"ondulado/internal/pkg/logger"
	"ondulado/internal/service/editorservice"
)

// EditorService define o contrato que o Handler espera do controlador do formulário.
type EditorService interface {
	State() editorservice.State
	BeginCreate() editorservice.State
	BeginEdit(ctx context.Context, id string) (editorservice.State, error)
	Fill(form domain.OnduladoForm) editorservice.State
	Submit(ctx context.Context) (editorservice.SubmitResult, error)
	Cancel() editorservice.State
}

// Handler expõe o formulário de criação/edição compartilhado.
type Handler struct {
	Service EditorService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc EditorService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// GetStateHandler lida com a requisição GET /v1/editor.
// @Summary Estado do formulário
// @Tags editor
// @Produce json
// @Success 200 {object} editorservice.State
// @Router /editor [get]
func (h *Handler) GetStateHandler(w http.ResponseWriter, r *http.Request) {
	response.Send(w, r, h.Logger, h.Service.State(), nil, http.StatusOK)
}

// BeginCreateHandler lida com a requisição POST /v1/editor/novo.
// @Summary Entra no modo criação
// @Description Descarta o conteúdo atual e carrega os valores padrão.
// @Tags editor
// @Produce json
// @Success 200 {object} editorservice.State
// @Router /editor/novo [post]
func (h *Handler) BeginCreateHandler(w http.ResponseWriter, r *http.Request) {
	response.Send(w, r, h.Logger, h.Service.BeginCreate(), nil, http.StatusOK)
}

// BeginEditHandler lida com a requisição POST /v1/editor/editar/{id}.
// @Summary Entra no modo edição
// @Description Copia os campos do ondulado para o formulário.
// @Tags editor
// @Produce json
// @Param id path string true "ID do ondulado"
// @Success 200 {object} editorservice.State
// @Failure 404 {object} domain.ErrorResponse "Ondulado não encontrado"
// @Router /editor/editar/{id} [post]
func (h *Handler) BeginEditHandler(w http.ResponseWriter, r *http.Request) {
	st, err := h.Service.BeginEdit(r.Context(), r.PathValue("id"))
	if err != nil {
		response.Send(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	response.Send(w, r, h.Logger, st, nil, http.StatusOK)
}

// FillHandler lida com a requisição PUT /v1/editor/formulario.
// @Summary Preenche o formulário
// @Description Substitui o conteúdo do formulário sem validar.
// @Tags editor
// @Accept json
// @Produce json
// @Param formulario body domain.OnduladoForm true "Conteúdo do formulário"
// @Success 200 {object} editorservice.State
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Router /editor/formulario [put]
func (h *Handler) FillHandler(w http.ResponseWriter, r *http.Request) {
	var form domain.OnduladoForm
	if err := response.DecodeJSON(r, &form); err != nil {
		response.Send(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}
	response.Send(w, r, h.Logger, h.Service.Fill(form), nil, http.StatusOK)
}

// SubmitHandler lida com a requisição POST /v1/editor/enviar.
// @Summary Envia o formulário
// @Description Cria (modo criação) ou atualiza (modo edição) e volta ao modo criação.
// @Tags editor
// @Produce json
// @Success 200 {object} editorservice.SubmitResult "Ondulado atualizado"
// @Success 201 {object} editorservice.SubmitResult "Ondulado criado"
// @Header 200,201 {string} X-Aviso-Persistencia "Presente quando a gravação falhou"
// @Failure 400 {object} domain.ErrorResponse "Formulário inválido"
// @Router /editor/enviar [post]
func (h *Handler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.Service.Submit(r.Context())
	if err != nil && !result.Applied {
		response.Send(w, r, h.Logger, nil, err, http.StatusOK)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	response.Send(w, r, h.Logger, result, err, status)
}

// CancelHandler lida com a requisição POST /v1/editor/cancelar.
// @Summary Cancela a edição
// @Tags editor
// @Produce json
// @Success 200 {object} editorservice.State
// @Router /editor/cancelar [post]
func (h *Handler) CancelHandler(w http.ResponseWriter, r *http.Request) {
	response.Send(w, r, h.Logger, h.Service.Cancel(), nil, http.StatusOK)
}

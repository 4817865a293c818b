package editorservice

import (
	"context"
	"errors"
	"sync"

	"ondulado/internal/domain"
	apperror "ondulado/internal/errors"
	"ondulado/internal/pkg/logger"
)

// Modos do editor.
const (
	ModeCreate = "criacao"
	ModeEdit   = "edicao"
)

// OnduladoStore define o que o editor precisa do serviço de ondulados.
type OnduladoStore interface {
	Get(ctx context.Context, id string) (domain.Ondulado, error)
	Create(ctx context.Context, fields domain.OnduladoFields) (domain.Ondulado, error)
	Update(ctx context.Context, id string, fields domain.OnduladoFields) (domain.Ondulado, bool, error)
}

// FormValidator valida o formulário antes do envio (implementado por validation.Validator).
type FormValidator interface {
	ValidateForm(form domain.OnduladoForm) error
}

// State é a fotografia do editor devolvida aos clientes.
type State struct {
	Mode     string              `json:"modo" example:"criacao"`
	TargetID string              `json:"alvoId,omitempty"`
	Form     domain.OnduladoForm `json:"formulario"`
}

// SubmitResult descreve o que o envio fez.
type SubmitResult struct {
	Ondulado domain.Ondulado `json:"ondulado"`
	Created  bool            `json:"criado"`
	// Applied é false quando o alvo da edição sumiu antes do envio (update no-op).
	Applied bool `json:"aplicado"`
}

// Service é o controlador do formulário: modo criação (sem alvo) ou edição (alvo definido).
type Service struct {
	mu        sync.Mutex
	store     OnduladoStore
	validator FormValidator
	logger    logger.Logger

	targetID string
	form     domain.OnduladoForm
}

// NewService cria o editor em modo criação com o formulário padrão.
func NewService(store OnduladoStore, validator FormValidator, logger logger.Logger) *Service {
	return &Service{
		store:     store,
		validator: validator,
		logger:    logger,
		form:      domain.FormFromFields(domain.DefaultFields()),
	}
}

// State devolve o modo, o alvo e o conteúdo atual do formulário.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// BeginCreate entra no modo criação com o formulário padrão.
func (s *Service) BeginCreate() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetLocked()
	s.logger.Debug("Editor em modo criação.", nil)
	return s.stateLocked()
}

// BeginEdit copia os campos atuais do registro id para o formulário e entra no modo edição.
func (s *Service) BeginEdit(ctx context.Context, id string) (State, error) {
	target, err := s.store.Get(ctx, id)
	if err != nil {
		s.logger.Warn("Ondulado não encontrado para edição.", map[string]interface{}{"id": id})
		return State{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.targetID = target.ID
	s.form = domain.FormFromFields(target.OnduladoFields)
	s.logger.Debug("Editor em modo edição.", map[string]interface{}{"id": id})
	return s.stateLocked(), nil
}

// Fill substitui o conteúdo do formulário sem validar (equivale ao usuário digitando).
func (s *Service) Fill(form domain.OnduladoForm) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form = form
	return s.stateLocked()
}

// Submit valida o formulário e despacha para Create (modo criação) ou Update (modo edição).
// Formulário inválido mantém modo e conteúdo. Após o envio o editor volta ao modo criação com os padrões,
// inclusive quando a gravação falha com PersistenceError, pois a mutação já foi aplicada em memória.
func (s *Service) Submit(ctx context.Context) (SubmitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validator.ValidateForm(s.form); err != nil {
		s.logger.Warn("Envio rejeitado pela validação do formulário.", map[string]interface{}{"modo": s.modeLocked(), "error": err.Error()})
		return SubmitResult{}, err
	}
	fields := s.form.Fields()

	var (
		result SubmitResult
		err    error
	)
	if s.targetID == "" {
		result.Ondulado, err = s.store.Create(ctx, fields)
		result.Created = true
		result.Applied = true
	} else {
		result.Ondulado, result.Applied, err = s.store.Update(ctx, s.targetID, fields)
		if !result.Applied {
			s.logger.Warn("Alvo da edição não existe mais. Nada foi alterado.", map[string]interface{}{"id": s.targetID})
		}
	}

	var persistErr *apperror.PersistenceError
	if err != nil && !errors.As(err, &persistErr) {
		return SubmitResult{}, err
	}

	s.resetLocked()
	return result, err
}

// Cancel descarta a edição em andamento sem tocar na coleção.
func (s *Service) Cancel() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.targetID != "" {
		s.logger.Debug("Edição cancelada.", map[string]interface{}{"id": s.targetID})
	}
	s.resetLocked()
	return s.stateLocked()
}

func (s *Service) resetLocked() {
	s.targetID = ""
	s.form = domain.FormFromFields(domain.DefaultFields())
}

func (s *Service) modeLocked() string {
	if s.targetID == "" {
		return ModeCreate
	}
	return ModeEdit
}

func (s *Service) stateLocked() State {
	return State{
		Mode:     s.modeLocked(),
		TargetID: s.targetID,
		Form:     s.form,
	}
}

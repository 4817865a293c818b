package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"ondulado/internal/domain"
	apperror "ondulado/internal/errors"
	"ondulado/internal/pkg/logger"
)

// HeaderAvisoPersistencia acompanha respostas de sucesso cuja gravação falhou.
// A mutação foi aplicada em memória; o cliente decide como avisar o usuário.
const HeaderAvisoPersistencia = "X-Aviso-Persistencia"

// Send processa erros de serviço e envia respostas padronizadas ao cliente.
// Um *apperror.PersistenceError junto de um resultado (data não nulo ou 204) é tratado como sucesso com aviso.
func Send(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	var persistErr *apperror.PersistenceError
	if err != nil && errors.As(err, &persistErr) && (data != nil || successStatus == http.StatusNoContent) {
		log.Warn("Resposta enviada com aviso de persistência.", map[string]interface{}{"path": r.URL.Path, "error": err.Error()})
		w.Header().Set(HeaderAvisoPersistencia, persistErr.Error())
		err = nil
	}

	if err == nil {
		// Sucesso
		if successStatus == http.StatusNoContent {
			w.WriteHeader(successStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				log.Error("Falha ao codificar JSON de resposta", jsonErr)
			}
		}
		return
	}

	// TRATAMENTO DE ERROS
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		log.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	errorResponse := domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
	}
	var verr *apperror.ValidationError
	if errors.As(err, &verr) {
		errorResponse.Fields = verr.Fields
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if jsonErr := json.NewEncoder(w).Encode(errorResponse); jsonErr != nil {
		log.Error("Falha ao codificar JSON de erro", jsonErr)
	}
}

// DecodeJSON lê o corpo como JSON em dst, devolvendo um ValidationError em caso de payload malformado.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	return nil
}

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type errorInfo struct {
	status  int
	message string
}

var businessErrors = map[string]errorInfo{
	"availability_unreadable":   {http.StatusServiceUnavailable, "Não foi possível consultar a agenda. Tente novamente."},
	"slot_conflict":             {http.StatusConflict, "Este horário já está reservado."},
	"invalid_slot":              {http.StatusBadRequest, "Horário fora da grade de atendimento."},
	"write_failed":              {http.StatusInternalServerError, "Não foi possível salvar o agendamento."},
	"off_catalog_appointment":   {http.StatusServiceUnavailable, "Existe um agendamento fora da grade neste dia."},
	"invalid_date_or_time":      {http.StatusBadRequest, "Data ou horário inválido."},
	"invalid_service":           {http.StatusBadRequest, "Serviço inválido."},
	"invalid_payment_status":    {http.StatusBadRequest, "Status de pagamento inválido."},
	"invalid_client_name":       {http.StatusBadRequest, "Informe o nome do cliente."},
	"slot_in_past":              {http.StatusBadRequest, "Não é possível agendar no passado."},
	"too_soon":                  {http.StatusBadRequest, "Agendamento com antecedência insuficiente."},
	"invalid_period":            {http.StatusBadRequest, "Período inválido."},
	"appointment_not_found":     {http.StatusNotFound, "Agendamento não encontrado."},
	"forbidden":                 {http.StatusForbidden, "Você não pode alterar este agendamento."},
	"client_phone_missing":      {http.StatusBadRequest, "O agendamento não possui telefone."},
	"invalid_notification_kind": {http.StatusBadRequest, "Tipo de notificação inválido."},
	"integration_unavailable":   {http.StatusServiceUnavailable, "Integração não configurada."},
	"integration_failed":        {http.StatusBadGateway, "Falha ao comunicar com o serviço externo."},
	"user_not_found":            {http.StatusNotFound, "Usuário não encontrado."},
	"email_already_registered":  {http.StatusConflict, "E-mail já cadastrado."},
}

// writeError turns a use case error into the JSON error envelope. Errors
// without a business code are logged and reported as internal.
func writeError(c *gin.Context, err error) {
	code := httperr.Code(err)
	info, ok := businessErrors[code]
	if !ok {
		_ = c.Error(err)
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	if info.status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	message := info.message
	var conflict *domain.SlotConflictError
	if errors.As(err, &conflict) {
		message = fmt.Sprintf(
			"O horário de %s já está reservado.",
			conflict.At.Format("02/01/2006 15:04"),
		)
	}

	switch info.status {
	case http.StatusBadRequest:
		httperr.BadRequest(c, code, message)
	case http.StatusForbidden:
		httperr.Forbidden(c, code, message)
	case http.StatusNotFound:
		httperr.NotFound(c, code, message)
	case http.StatusConflict:
		httperr.Conflict(c, code, message)
	case http.StatusServiceUnavailable:
		httperr.Unavailable(c, code, message)
	case http.StatusBadGateway:
		httperr.BadGateway(c, code, message)
	case http.StatusInternalServerError:
		httperr.Internal(c, code, message)
	default:
		httperr.Write(c, info.status, code, message)
	}
}

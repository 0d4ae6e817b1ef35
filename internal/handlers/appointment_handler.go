package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// AppointmentHandler serves the signed-in client's own bookings.
type AppointmentHandler struct {
	createUC   *ucAppointment.CreateAppointment
	listMineUC *ucAppointment.ListMine
	cancelUC   *ucAppointment.CancelAppointment
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listMineUC *ucAppointment.ListMine,
	cancelUC *ucAppointment.CancelAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:   createUC,
		listMineUC: listMineUC,
		cancelUC:   cancelUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone"`
	Service     string `json:"service" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	actor := actorFrom(c)

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Actor:       actor,
		ClientName:  req.ClientName,
		ClientEmail: actor.Email,
		ClientPhone: req.ClientPhone,
		Service:     req.Service,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	apps, err := h.listMineUC.Execute(c.Request.Context(), actorFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, apps)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), actorFrom(c), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

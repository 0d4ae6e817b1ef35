package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	listUC        *ucAppointment.ListGrouped
	createUC      *ucAppointment.CreateAppointment
	updateUC      *ucAppointment.UpdateAppointment
	paymentUC     *ucAppointment.SetPaymentStatus
	cancelUC      *ucAppointment.CancelAppointment
	notifyUC      *ucAppointment.NotifyClient
	paymentLinkUC *ucAppointment.CreatePaymentLink
	dashboardUC   *ucAppointment.Dashboard
	reportUC      *ucAppointment.ExportMonthlyReport

	loc *time.Location
}

type AdminUseCases struct {
	List        *ucAppointment.ListGrouped
	Create      *ucAppointment.CreateAppointment
	Update      *ucAppointment.UpdateAppointment
	Payment     *ucAppointment.SetPaymentStatus
	Cancel      *ucAppointment.CancelAppointment
	Notify      *ucAppointment.NotifyClient
	PaymentLink *ucAppointment.CreatePaymentLink
	Dashboard   *ucAppointment.Dashboard
	Report      *ucAppointment.ExportMonthlyReport
}

func NewAdminHandler(uc AdminUseCases, loc *time.Location) *AdminHandler {
	return &AdminHandler{
		listUC:        uc.List,
		createUC:      uc.Create,
		updateUC:      uc.Update,
		paymentUC:     uc.Payment,
		cancelUC:      uc.Cancel,
		notifyUC:      uc.Notify,
		paymentLinkUC: uc.PaymentLink,
		dashboardUC:   uc.Dashboard,
		reportUC:      uc.Report,
		loc:           loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AdminCreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`
	Service     string `json:"service" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Date          *string `json:"date"`
	Time          *string `json:"time"`
	ClientName    *string `json:"client_name"`
	ClientEmail   *string `json:"client_email"`
	ClientPhone   *string `json:"client_phone"`
	PaymentStatus *string `json:"payment_status"`
	Notes         *string `json:"notes"`
}

type PaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type NotifyRequest struct {
	Kind string `json:"kind"`
}

// ======================================================
// LIST (agrupado por data e cliente)
// ======================================================

func (h *AdminHandler) List(c *gin.Context) {
	page, err := h.listUC.Execute(c.Request.Context(), ucAppointment.ListGroupedInput{
		Page: queryInt(c, "page", 1),
		From: c.Query("from"),
		To:   c.Query("to"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, page)
}

// ======================================================
// CREATE
// ======================================================

func (h *AdminHandler) Create(c *gin.Context) {
	var req AdminCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Actor:       actorFrom(c),
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
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
// UPDATE
// ======================================================

func (h *AdminHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		Actor:         actorFrom(c),
		ID:            id,
		Date:          req.Date,
		Time:          req.Time,
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		ClientPhone:   req.ClientPhone,
		PaymentStatus: req.PaymentStatus,
		Notes:         req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AdminHandler) SetPaymentStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req PaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.paymentUC.Execute(c.Request.Context(), actorFrom(c), id, req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AdminHandler) Delete(c *gin.Context) {
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

// ======================================================
// INTEGRATIONS
// ======================================================

func (h *AdminHandler) Notify(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req NotifyRequest
	// empty body means confirmation
	_ = c.ShouldBindJSON(&req)

	if err := h.notifyUC.Execute(c.Request.Context(), actorFrom(c), id, req.Kind); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "sent"})
}

func (h *AdminHandler) PaymentLink(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	checkout, err := h.paymentLinkUC.Execute(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, checkout)
}

// ======================================================
// REPORTING
// ======================================================

// period reads ?year=&month=, defaulting to the current month.
func (h *AdminHandler) period(c *gin.Context) (int, int) {
	now := time.Now().In(h.loc)
	return queryInt(c, "year", now.Year()), queryInt(c, "month", int(now.Month()))
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	year, month := h.period(c)

	out, err := h.dashboardUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *AdminHandler) ExportReport(c *gin.Context) {
	year, month := h.period(c)

	out, err := h.reportUC.Execute(c.Request.Context(), actorFrom(c), year, month)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, out)
}

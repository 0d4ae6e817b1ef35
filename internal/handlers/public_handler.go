package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

type PublicHandler struct {
	availability *ucAppointment.GetAvailability
}

func NewPublicHandler(availability *ucAppointment.GetAvailability) *PublicHandler {
	return &PublicHandler{availability: availability}
}

func (h *PublicHandler) Slots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"slots":        domain.Catalog(),
		"slot_minutes": int(domain.SlotDuration.Minutes()),
	})
}

func (h *PublicHandler) Services(c *gin.Context) {
	httpresp.List(c, domain.Services())
}

func (h *PublicHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (AAAA-MM-DD).")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), date)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

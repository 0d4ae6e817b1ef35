package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

type CronHandler struct {
	remindersUC *ucAppointment.SendReminders
}

func NewCronHandler(remindersUC *ucAppointment.SendReminders) *CronHandler {
	return &CronHandler{remindersUC: remindersUC}
}

func (h *CronHandler) Reminders(c *gin.Context) {
	res, err := h.remindersUC.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, res)
}

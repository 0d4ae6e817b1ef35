package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const CronSecretHeader = "X-Cron-Secret"

// CronSecret guards scheduler endpoints. An empty secret disables them.
func CronSecret(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(CronSecretHeader)
		if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			httperr.Unauthorized(c, "invalid_cron_secret", "Segredo do agendador inválido.")
			c.Abort()
			return
		}
		c.Next()
	}
}

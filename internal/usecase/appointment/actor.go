package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uint
	Email  string
	Role   string
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

func (a Actor) idPtr() *uint {
	if a.UserID == 0 {
		return nil
	}
	id := a.UserID
	return &id
}

type clock func() time.Time

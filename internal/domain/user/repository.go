package user

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var (
	ErrNotFound   = httperr.ErrBusiness("user_not_found")
	ErrEmailTaken = httperr.ErrBusiness("email_already_registered")
)

type Repository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}

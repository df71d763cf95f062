package repository

import (
	"context"

	"github.com/Rive3FY/magazzino-app/internal/domain/entity"
)

// UserRepository definisce la porta di persistenza per gli utenti (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

package interfaces

import (
	"context"
	"offer_agent/internal/domain/entities"
)

// IUserRepository abstracts persistence for User.
//
// Lookups that find nothing return the zero value and a nil error.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
}

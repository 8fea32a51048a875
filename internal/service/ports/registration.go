package ports

import (
	"context"

	"github.com/FrankMwesigwa/ntlp-conf/internal/domain"
)

type RegistrationRepo interface {
	Create(ctx context.Context, reg *domain.Registration) error
	GetByID(ctx context.Context, id int64) (*domain.Registration, error)
	GetByEmail(ctx context.Context, email string) (*domain.Registration, error)
	List(ctx context.Context, f domain.ListFilter) ([]*domain.Registration, int, error)
	UpdateStatus(ctx context.Context, id int64, patch domain.StatusPatch) (*domain.Registration, error)
	Cancel(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*domain.RegistrationStats, error)
}

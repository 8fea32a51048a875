package ports

import (
	"context"

	"github.com/FrankMwesigwa/ntlp-conf/internal/domain"
)

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id int64) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, id int64) error
}

package bill

import (
	"context"
)

// Repository persiste contas. Upsert e Delete recalculam o agregado global
// na mesma transação.
type Repository interface {
	Upsert(ctx context.Context, b *Bill) error
	Delete(ctx context.Context, id string) error
	GetById(ctx context.Context, id string) (*Bill, error)
	List(ctx context.Context) ([]*Bill, error)
}

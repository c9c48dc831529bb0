package round

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, r *CollectionRound) error
	Update(ctx context.Context, r *CollectionRound) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetById(ctx context.Context, id ulid.ULID) (*CollectionRound, error)
	// List devolve as rodadas por start_date decrescente; a primeira é a
	// rodada ativa.
	List(ctx context.Context) ([]*CollectionRound, error)
	// PreviousStart devolve o início da rodada imediatamente anterior
	// (start_date < before), ou nil se não houver.
	PreviousStart(ctx context.Context, before time.Time) (*time.Time, error)
}

package unit

import (
	"context"
)

type Repository interface {
	SeedBatch(ctx context.Context, units []*Unit) error
	Count(ctx context.Context) (int64, error)
	GetById(ctx context.Context, id string) (*Unit, error)
	List(ctx context.Context) ([]*Unit, error)
	ListByBlock(ctx context.Context, block string) ([]*Unit, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	SumTotals(ctx context.Context) (float64, error)
	Exists(ctx context.Context, id string) (bool, error)
}

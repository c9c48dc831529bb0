package stats

import (
	"context"

	domaincontracts "Rateio/internal/domain/contracts"
	"Rateio/internal/domain/unit"
	appErrors "Rateio/internal/errors"
	"Rateio/internal/logger"
)

type Service struct {
	Repository     Repository
	UnitRepository unit.Repository
	UnitCount      int
}

func NewService(repo Repository, unitRepo unit.Repository, unitCount int) *Service {
	return &Service{
		Repository:     repo,
		UnitRepository: unitRepo,
		UnitCount:      unitCount,
	}
}

func (s *Service) Get(ctx context.Context) (*GlobalStats, error) {
	return s.Repository.Get(ctx)
}

// Recompute refaz os agregados a partir de todas as contas. Caminho de
// recuperação manual; as mutações de conta já recalculam na própria transação.
func (s *Service) Recompute(ctx context.Context) (*GlobalStats, error) {
	entity, err := s.Repository.Recompute(ctx, s.UnitCount)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Float64("total_bills", entity.TotalBillsAmount).
		Float64("unit_target", entity.UnitTarget).
		Msg("estatísticas recalculadas")
	return entity, nil
}

func (s *Service) SetOverride(ctx context.Context, request *domaincontracts.OverrideRequest) error {
	if request.Enabled && request.Target <= 0 {
		return appErrors.NewValidationError("target", "deve ser maior que zero")
	}
	target := request.Target
	if !request.Enabled {
		target = 0
	}
	return s.Repository.SetOverride(ctx, request.Enabled, target)
}

func (s *Service) SetUnclaimed(ctx context.Context, request *domaincontracts.UnclaimedRequest) error {
	if request.Amount < 0 {
		return appErrors.NewValidationError("amount", "não pode ser negativo")
	}
	return s.Repository.SetUnclaimed(ctx, request.Amount)
}

// Summary monta a leitura de ponto de equilíbrio.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	entity, err := s.Repository.Get(ctx)
	if err != nil {
		return nil, err
	}

	contributed, err := s.UnitRepository.SumTotals(ctx)
	if err != nil {
		return nil, err
	}

	collected := contributed + entity.UnclaimedAmount
	diff := collected - entity.TotalBillsAmount

	return &Summary{
		TotalBillsAmount:  entity.TotalBillsAmount,
		UnitTarget:        entity.UnitTarget,
		IsOverrideEnabled: entity.IsOverrideEnabled,
		OverrideTarget:    entity.OverrideTarget,
		EffectiveTarget:   entity.EffectiveTarget(),
		UnclaimedAmount:   entity.UnclaimedAmount,
		TotalContributed:  contributed,
		TotalCollected:    collected,
		Diff:              diff,
		BreakEven:         diff >= 0,
		LastUpdated:       entity.LastUpdated,
	}, nil
}

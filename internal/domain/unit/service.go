package unit

import (
	"context"
	"strings"
	"time"

	domaincontracts "Rateio/internal/domain/contracts"
	appErrors "Rateio/internal/errors"
	"Rateio/internal/logger"
)

type Service struct {
	Repository Repository
	UnitCount  int
}

func NewService(repo Repository, unitCount int) *Service {
	return &Service{
		Repository: repo,
		UnitCount:  unitCount,
	}
}

// Seed cria as unidades E-01..E-NN uma única vez. Se qualquer unidade já
// existir, nada é feito.
func (s *Service) Seed(ctx context.Context) (int, error) {
	count, err := s.Repository.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		logger.Debug().Int64("units", count).Msg("unidades já existem, seed ignorado")
		return 0, nil
	}

	now := time.Now()
	units := make([]*Unit, 0, s.UnitCount)
	for i := 1; i <= s.UnitCount; i++ {
		id := FormatUnitId(DefaultBlock, i)
		units = append(units, &Unit{
			Id:               id,
			OwnerName:        "Proprietário " + id,
			TotalContributed: 0,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}

	if err := s.Repository.SeedBatch(ctx, units); err != nil {
		return 0, err
	}

	logger.Info().Int("units", len(units)).Msg("unidades criadas")
	return len(units), nil
}

func (s *Service) GetUnitById(ctx context.Context, id string) (*Unit, error) {
	if id == "" {
		return nil, appErrors.NewValidationError("id", "é obrigatório")
	}
	return s.Repository.GetById(ctx, id)
}

func (s *Service) ListUnits(ctx context.Context, block string) ([]*Unit, error) {
	if block != "" {
		return s.Repository.ListByBlock(ctx, block)
	}
	return s.Repository.List(ctx)
}

// UpdateUnit altera apenas os campos administrativos; o total acumulado
// nunca passa por aqui.
func (s *Service) UpdateUnit(ctx context.Context, request *domaincontracts.UnitUpdateRequest) error {
	if request.Id == "" {
		return appErrors.NewValidationError("id", "é obrigatório")
	}

	exists, err := s.Repository.Exists(ctx, request.Id)
	if err != nil {
		return err
	}
	if !exists {
		return appErrors.ErrUnitNotFound
	}

	fields := map[string]interface{}{}
	if request.OwnerName != nil {
		fields["owner_name"] = strings.TrimSpace(*request.OwnerName)
	}
	if request.IsHighlighted != nil {
		fields["is_highlighted"] = *request.IsHighlighted
	}
	if request.PublicNote != nil {
		fields["public_note"] = strings.TrimSpace(*request.PublicNote)
	}
	if len(fields) == 0 {
		return appErrors.NewValidationError("body", "nenhum campo para atualizar")
	}
	fields["updated_at"] = time.Now()

	return s.Repository.UpdateFields(ctx, request.Id, fields)
}

func (s *Service) TotalContributed(ctx context.Context) (float64, error) {
	return s.Repository.SumTotals(ctx)
}

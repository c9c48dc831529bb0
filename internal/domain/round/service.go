package round

import (
	"context"
	"strings"
	"time"

	domaincontracts "Rateio/internal/domain/contracts"
	"Rateio/internal/domain/payment"
	"Rateio/internal/domain/unit"
	appErrors "Rateio/internal/errors"
	"Rateio/internal/logger"
	"Rateio/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Service struct {
	Repository        Repository
	PaymentRepository payment.Repository
	UnitRepository    unit.Repository
}

func NewService(repo Repository, paymentRepo payment.Repository, unitRepo unit.Repository) *Service {
	return &Service{
		Repository:        repo,
		PaymentRepository: paymentRepo,
		UnitRepository:    unitRepo,
	}
}

func (s *Service) CreateRound(ctx context.Context, request *domaincontracts.RoundCreateRequest) (*CollectionRound, error) {
	if err := s.validate(ctx, request.Title, request.Target, request.StartDate, request.UnitIds); err != nil {
		return nil, err
	}

	now := time.Now()
	entity := &CollectionRound{
		Id:                   pkg.GenerateULIDObject(),
		Title:                strings.TrimSpace(request.Title),
		TargetAmount:         request.Target,
		StartDate:            request.StartDate,
		ParticipatingUnitIds: request.UnitIds,
		Remarks:              strings.TrimSpace(request.Remarks),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.Repository.Create(ctx, entity); err != nil {
		return nil, err
	}

	logger.Info().Str("round", entity.Id.String()).Str("title", entity.Title).Msg("rodada criada")
	return entity, nil
}

// UpdateRound preserva id e created_at através das edições.
func (s *Service) UpdateRound(ctx context.Context, request *domaincontracts.RoundUpdateRequest) error {
	if err := s.validate(ctx, request.Title, request.Target, request.StartDate, request.UnitIds); err != nil {
		return err
	}

	current, err := s.Repository.GetById(ctx, request.Id)
	if err != nil {
		return err
	}

	current.Title = strings.TrimSpace(request.Title)
	current.TargetAmount = request.Target
	current.StartDate = request.StartDate
	current.ParticipatingUnitIds = request.UnitIds
	current.Remarks = strings.TrimSpace(request.Remarks)
	current.UpdatedAt = time.Now()

	return s.Repository.Update(ctx, current)
}

func (s *Service) DeleteRound(ctx context.Context, id ulid.ULID) error {
	if _, err := s.Repository.GetById(ctx, id); err != nil {
		return err
	}
	return s.Repository.Delete(ctx, id)
}

func (s *Service) GetRoundById(ctx context.Context, id ulid.ULID) (*CollectionRound, error) {
	return s.Repository.GetById(ctx, id)
}

func (s *Service) ListRounds(ctx context.Context) ([]*CollectionRound, error) {
	return s.Repository.List(ctx)
}

// GetProgress calcula o progresso de uma rodada. A janela começa na data de
// início da rodada anterior; a primeira rodada usa seis meses antes do
// próprio início. Pagamentos datados exatamente no início da janela contam.
func (s *Service) GetProgress(ctx context.Context, id ulid.ULID) (*Progress, error) {
	entity, err := s.Repository.GetById(ctx, id)
	if err != nil {
		return nil, err
	}

	effectiveStart, err := s.effectiveStartDate(ctx, entity)
	if err != nil {
		return nil, err
	}

	collected, err := s.PaymentRepository.SumInWindow(ctx, effectiveStart, entity.ParticipatingUnitIds)
	if err != nil {
		return nil, err
	}

	percentage := 0.0
	if entity.TargetAmount > 0 {
		percentage = (collected / entity.TargetAmount) * 100
	}

	remaining := entity.TargetAmount - collected
	if remaining < 0 {
		remaining = 0
	}

	return &Progress{
		RoundId:            entity.Id,
		Title:              entity.Title,
		TargetAmount:       entity.TargetAmount,
		Collected:          collected,
		Remaining:          remaining,
		Percentage:         percentage,
		EffectiveStartDate: effectiveStart,
	}, nil
}

func (s *Service) effectiveStartDate(ctx context.Context, entity *CollectionRound) (time.Time, error) {
	previous, err := s.Repository.PreviousStart(ctx, entity.StartDate)
	if err != nil {
		return time.Time{}, err
	}
	if previous != nil {
		return *previous, nil
	}
	return entity.StartDate.AddDate(0, -FirstRoundWindowMonths, 0), nil
}

func (s *Service) validate(ctx context.Context, title string, target float64, startDate time.Time, unitIDs []string) error {
	if strings.TrimSpace(title) == "" {
		return appErrors.NewValidationError("title", "é obrigatório")
	}
	if target <= 0 {
		return appErrors.NewValidationError("target", "deve ser maior que zero")
	}
	if startDate.IsZero() {
		return appErrors.NewValidationError("start_date", "é obrigatória")
	}
	if len(unitIDs) == 0 {
		return appErrors.NewValidationError("unit_ids", "deve ter ao menos uma unidade")
	}
	for _, unitID := range unitIDs {
		exists, err := s.UnitRepository.Exists(ctx, unitID)
		if err != nil {
			return err
		}
		if !exists {
			return appErrors.ErrUnitNotFound.WithDetails(map[string]interface{}{
				"unit_id": unitID,
			})
		}
	}
	return nil
}

package bill

import (
	"context"
	"time"

	domaincontracts "Rateio/internal/domain/contracts"
	appErrors "Rateio/internal/errors"
	"Rateio/internal/logger"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

// SaveBill grava a conta do período. Regravar o mesmo (ano, mês) sobrescreve
// a conta existente em vez de duplicar.
func (s *Service) SaveBill(ctx context.Context, request *domaincontracts.BillUpsertRequest) (*Bill, error) {
	if err := Validate(*request); err != nil {
		return nil, err
	}

	entity := &Bill{
		Id:        PeriodId(request.Year, request.Month),
		Month:     request.Month,
		Year:      request.Year,
		Amount:    request.Amount,
		IssueDate: request.IssueDate,
		CreatedAt: time.Now(),
	}

	if err := s.Repository.Upsert(ctx, entity); err != nil {
		return nil, err
	}

	logger.Info().Str("bill", entity.Id).Float64("amount", entity.Amount).Msg("conta gravada")
	return entity, nil
}

func (s *Service) DeleteBill(ctx context.Context, id string) error {
	if id == "" {
		return appErrors.NewValidationError("id", "é obrigatório")
	}
	if err := s.Repository.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Str("bill", id).Msg("conta removida")
	return nil
}

func (s *Service) GetBillById(ctx context.Context, id string) (*Bill, error) {
	if id == "" {
		return nil, appErrors.NewValidationError("id", "é obrigatório")
	}
	return s.Repository.GetById(ctx, id)
}

func (s *Service) ListBills(ctx context.Context) ([]*Bill, error) {
	return s.Repository.List(ctx)
}

func Validate(request domaincontracts.BillUpsertRequest) error {
	if request.Month < 1 || request.Month > 12 {
		return appErrors.NewValidationError("month", "deve estar entre 1 e 12")
	}
	if request.Year < 2000 || request.Year > 2200 {
		return appErrors.NewValidationError("year", "fora do intervalo aceito")
	}
	if request.Amount <= 0 {
		return appErrors.NewValidationError("amount", "deve ser maior que zero")
	}
	if request.IssueDate.IsZero() {
		return appErrors.NewValidationError("issue_date", "é obrigatória")
	}
	return nil
}

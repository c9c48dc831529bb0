package payment

import (
	"context"
	"strings"
	"time"

	domaincontracts "Rateio/internal/domain/contracts"
	"Rateio/internal/domain/unit"
	appErrors "Rateio/internal/errors"
	"Rateio/internal/logger"
	"Rateio/internal/pkg"
	"Rateio/internal/storage"

	"github.com/oklog/ulid/v2"
)

// Service implementa o ciclo de vida de um pagamento:
// pendente -> aprovado/rejeitado -> arquivado -> expurgado.
type Service struct {
	Repository     Repository
	UnitRepository unit.Repository
	// Podem ser nil quando o armazenamento de comprovantes está desabilitado.
	PublicUploader storage.ReceiptUploader
	AdminUploader  storage.ReceiptUploader
}

func NewService(repo Repository, unitRepo unit.Repository, publicUploader, adminUploader storage.ReceiptUploader) *Service {
	return &Service{
		Repository:     repo,
		UnitRepository: unitRepo,
		PublicUploader: publicUploader,
		AdminUploader:  adminUploader,
	}
}

// SubmitPayment registra a submissão de um morador. O comprovante sobe
// primeiro; falha de upload aborta a submissão.
func (s *Service) SubmitPayment(ctx context.Context, request *domaincontracts.PaymentSubmitRequest) (*PendingPayment, error) {
	if err := s.validatePaymentInput(ctx, request.UnitId, request.Amount, request.Date); err != nil {
		return nil, err
	}

	receiptURL, err := s.uploadReceipt(ctx, s.PublicUploader, request.Receipt)
	if err != nil {
		return nil, err
	}

	entity := &PendingPayment{
		Id:         pkg.GenerateULIDObject(),
		UnitId:     request.UnitId,
		Amount:     request.Amount,
		Date:       request.Date,
		Reference:  strings.TrimSpace(request.Reference),
		ReceiptUrl: receiptURL,
		CreatedAt:  time.Now(),
	}

	if err := s.Repository.CreatePending(ctx, entity); err != nil {
		return nil, err
	}

	logger.Info().
		Str("pending", entity.Id.String()).
		Str("unit", entity.UnitId).
		Float64("amount", entity.Amount).
		Msg("pagamento pendente submetido")
	return entity, nil
}

func (s *Service) UpdatePending(ctx context.Context, request *domaincontracts.PendingUpdateRequest) error {
	if _, err := s.Repository.GetPendingById(ctx, request.Id); err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if request.Amount != nil {
		if *request.Amount <= 0 {
			return appErrors.NewValidationError("amount", "deve ser maior que zero")
		}
		fields["amount"] = *request.Amount
	}
	if request.Reference != nil {
		fields["reference"] = strings.TrimSpace(*request.Reference)
	}
	if len(fields) == 0 {
		return appErrors.NewValidationError("body", "nenhum campo para atualizar")
	}

	return s.Repository.UpdatePendingFields(ctx, request.Id, fields)
}

// Approve promove um pendente a pagamento. O valor aprovado é o que
// incrementa o total da unidade.
func (s *Service) Approve(ctx context.Context, request *domaincontracts.ApproveRequest) (*Payment, error) {
	pending, err := s.Repository.GetPendingById(ctx, request.PendingId)
	if err != nil {
		return nil, err
	}

	amount := pending.Amount
	if request.Amount != nil {
		amount = *request.Amount
	}
	if amount <= 0 {
		return nil, appErrors.NewValidationError("amount", "valor aprovado deve ser maior que zero")
	}

	reference := pending.Reference
	if request.Reference != nil {
		reference = strings.TrimSpace(*request.Reference)
	}

	approved := &Payment{
		Id:         pkg.GenerateULIDObject(),
		UnitId:     pending.UnitId,
		Amount:     amount,
		Date:       pending.Date,
		Reference:  reference,
		ReceiptUrl: pending.ReceiptUrl,
		CreatedAt:  time.Now(),
	}

	if err := s.Repository.Approve(ctx, request.PendingId, approved); err != nil {
		return nil, err
	}

	logger.Info().
		Str("payment", approved.Id.String()).
		Str("unit", approved.UnitId).
		Float64("amount", approved.Amount).
		Msg("pagamento aprovado")
	return approved, nil
}

func (s *Service) Reject(ctx context.Context, request *domaincontracts.RejectRequest) error {
	if _, err := s.Repository.GetPendingById(ctx, request.PendingId); err != nil {
		return err
	}

	reason := strings.TrimSpace(request.Reason)
	if err := s.Repository.Reject(ctx, request.PendingId, reason, pkg.GenerateULIDObject(), time.Now()); err != nil {
		return err
	}

	logger.Info().Str("pending", request.PendingId.String()).Msg("pagamento rejeitado")
	return nil
}

// CreatePayment é o lançamento direto do administrador: entra já aprovado.
func (s *Service) CreatePayment(ctx context.Context, request *domaincontracts.PaymentCreateRequest) (*Payment, error) {
	if err := s.validatePaymentInput(ctx, request.UnitId, request.Amount, request.Date); err != nil {
		return nil, err
	}

	receiptURL, err := s.uploadReceipt(ctx, s.AdminUploader, request.Receipt)
	if err != nil {
		return nil, err
	}

	entity := &Payment{
		Id:         pkg.GenerateULIDObject(),
		UnitId:     request.UnitId,
		Amount:     request.Amount,
		Date:       request.Date,
		Reference:  strings.TrimSpace(request.Reference),
		ReceiptUrl: receiptURL,
		CreatedAt:  time.Now(),
	}

	if err := s.Repository.CreateWithLedger(ctx, entity); err != nil {
		return nil, err
	}

	logger.Info().
		Str("payment", entity.Id.String()).
		Str("unit", entity.UnitId).
		Float64("amount", entity.Amount).
		Msg("pagamento lançado")
	return entity, nil
}

// DeletePayment arquiva um pagamento aprovado com source=deleted e estorna o
// total da unidade.
func (s *Service) DeletePayment(ctx context.Context, paymentID ulid.ULID) (*ArchivedPayment, error) {
	if _, err := s.Repository.GetPaymentById(ctx, paymentID); err != nil {
		return nil, err
	}

	archived, err := s.Repository.ArchiveApproved(ctx, paymentID, pkg.GenerateULIDObject(), time.Now())
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("payment", paymentID.String()).
		Str("archive", archived.Id.String()).
		Msg("pagamento arquivado")
	return archived, nil
}

// Purge apaga definitivamente um registro do arquivo.
func (s *Service) Purge(ctx context.Context, archiveID ulid.ULID) error {
	if _, err := s.Repository.GetArchivedById(ctx, archiveID); err != nil {
		return err
	}
	if err := s.Repository.Purge(ctx, archiveID); err != nil {
		return err
	}
	logger.Info().Str("archive", archiveID.String()).Msg("registro expurgado do arquivo")
	return nil
}

func (s *Service) GetPaymentById(ctx context.Context, id ulid.ULID) (*Payment, error) {
	return s.Repository.GetPaymentById(ctx, id)
}

func (s *Service) ListPayments(ctx context.Context, filters *PaymentFilters, pagination *pkg.PaginationParams) ([]*Payment, int64, error) {
	return s.Repository.ListPayments(ctx, filters, pagination)
}

func (s *Service) ListPending(ctx context.Context) ([]*PendingPayment, error) {
	return s.Repository.ListPending(ctx)
}

func (s *Service) ListArchived(ctx context.Context, pagination *pkg.PaginationParams) ([]*ArchivedPayment, int64, error) {
	return s.Repository.ListArchived(ctx, pagination)
}

func (s *Service) validatePaymentInput(ctx context.Context, unitID string, amount float64, date time.Time) error {
	if unitID == "" {
		return appErrors.NewValidationError("unit_id", "é obrigatório")
	}
	if amount <= 0 {
		return appErrors.NewValidationError("amount", "deve ser maior que zero")
	}
	if date.IsZero() {
		return appErrors.NewValidationError("date", "é obrigatória")
	}

	exists, err := s.UnitRepository.Exists(ctx, unitID)
	if err != nil {
		return err
	}
	if !exists {
		return appErrors.ErrUnitNotFound
	}
	return nil
}

func (s *Service) uploadReceipt(ctx context.Context, uploader storage.ReceiptUploader, receipt *domaincontracts.ReceiptFile) (string, error) {
	if receipt == nil {
		return "", nil
	}
	if uploader == nil {
		return "", appErrors.ErrUploadFailed.WithDetails(map[string]interface{}{
			"reason": "armazenamento de comprovantes desabilitado",
		})
	}
	url, err := uploader.Upload(ctx, receipt.Name, receipt.ContentType, receipt.Data)
	if err != nil {
		return "", err
	}
	return url, nil
}

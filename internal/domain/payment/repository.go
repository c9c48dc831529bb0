package payment

import (
	"context"
	"time"

	"Rateio/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type PaymentFilters struct {
	UnitId *string
	From   *time.Time
	To     *time.Time
}

// Repository cobre os três conjuntos (ativo, pendente, arquivo). Toda
// transição que toca mais de uma entidade é uma única transação no banco.
type Repository interface {
	CreateWithLedger(ctx context.Context, p *Payment) error
	Approve(ctx context.Context, pendingID ulid.ULID, approved *Payment) error
	Reject(ctx context.Context, pendingID ulid.ULID, reason string, archiveID ulid.ULID, archivedAt time.Time) error
	ArchiveApproved(ctx context.Context, paymentID ulid.ULID, archiveID ulid.ULID, archivedAt time.Time) (*ArchivedPayment, error)

	GetPaymentById(ctx context.Context, id ulid.ULID) (*Payment, error)
	ListPayments(ctx context.Context, filters *PaymentFilters, pagination *pkg.PaginationParams) ([]*Payment, int64, error)
	// SumInWindow soma pagamentos com date >= from restritos às unidades
	// informadas.
	SumInWindow(ctx context.Context, from time.Time, unitIDs []string) (float64, error)

	CreatePending(ctx context.Context, p *PendingPayment) error
	GetPendingById(ctx context.Context, id ulid.ULID) (*PendingPayment, error)
	UpdatePendingFields(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error
	ListPending(ctx context.Context) ([]*PendingPayment, error)
	PendingSumByUnit(ctx context.Context) (map[string]float64, error)

	GetArchivedById(ctx context.Context, id ulid.ULID) (*ArchivedPayment, error)
	ListArchived(ctx context.Context, pagination *pkg.PaginationParams) ([]*ArchivedPayment, int64, error)
	Purge(ctx context.Context, id ulid.ULID) error
}

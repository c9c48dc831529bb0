package dashboard_test

import (
	"context"
	"testing"
	"time"

	"Rateio/internal/domain/dashboard"
	"Rateio/internal/domain/payment"
	"Rateio/internal/domain/stats"
	"Rateio/internal/domain/unit"
	"Rateio/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakeUnitRepository struct {
	listFn      func(ctx context.Context) ([]*unit.Unit, error)
	sumTotalsFn func(ctx context.Context) (float64, error)
}

func (f *fakeUnitRepository) SeedBatch(ctx context.Context, units []*unit.Unit) error { return nil }
func (f *fakeUnitRepository) Count(ctx context.Context) (int64, error)               { return 0, nil }
func (f *fakeUnitRepository) GetById(ctx context.Context, id string) (*unit.Unit, error) {
	return nil, nil
}
func (f *fakeUnitRepository) List(ctx context.Context) ([]*unit.Unit, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}
func (f *fakeUnitRepository) ListByBlock(ctx context.Context, block string) ([]*unit.Unit, error) {
	return nil, nil
}
func (f *fakeUnitRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return nil
}
func (f *fakeUnitRepository) SumTotals(ctx context.Context) (float64, error) {
	if f.sumTotalsFn != nil {
		return f.sumTotalsFn(ctx)
	}
	return 0, nil
}
func (f *fakeUnitRepository) Exists(ctx context.Context, id string) (bool, error) { return true, nil }

type fakePaymentRepository struct {
	pendingSumByUnitFn func(ctx context.Context) (map[string]float64, error)
}

func (f *fakePaymentRepository) CreateWithLedger(ctx context.Context, p *payment.Payment) error {
	return nil
}
func (f *fakePaymentRepository) Approve(ctx context.Context, pendingID ulid.ULID, approved *payment.Payment) error {
	return nil
}
func (f *fakePaymentRepository) Reject(ctx context.Context, pendingID ulid.ULID, reason string, archiveID ulid.ULID, archivedAt time.Time) error {
	return nil
}
func (f *fakePaymentRepository) ArchiveApproved(ctx context.Context, paymentID ulid.ULID, archiveID ulid.ULID, archivedAt time.Time) (*payment.ArchivedPayment, error) {
	return nil, nil
}
func (f *fakePaymentRepository) GetPaymentById(ctx context.Context, id ulid.ULID) (*payment.Payment, error) {
	return nil, nil
}
func (f *fakePaymentRepository) ListPayments(ctx context.Context, filters *payment.PaymentFilters, pagination *pkg.PaginationParams) ([]*payment.Payment, int64, error) {
	return nil, 0, nil
}
func (f *fakePaymentRepository) SumInWindow(ctx context.Context, from time.Time, unitIDs []string) (float64, error) {
	return 0, nil
}
func (f *fakePaymentRepository) CreatePending(ctx context.Context, p *payment.PendingPayment) error {
	return nil
}
func (f *fakePaymentRepository) GetPendingById(ctx context.Context, id ulid.ULID) (*payment.PendingPayment, error) {
	return nil, nil
}
func (f *fakePaymentRepository) UpdatePendingFields(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error {
	return nil
}
func (f *fakePaymentRepository) ListPending(ctx context.Context) ([]*payment.PendingPayment, error) {
	return nil, nil
}
func (f *fakePaymentRepository) PendingSumByUnit(ctx context.Context) (map[string]float64, error) {
	if f.pendingSumByUnitFn != nil {
		return f.pendingSumByUnitFn(ctx)
	}
	return nil, nil
}
func (f *fakePaymentRepository) GetArchivedById(ctx context.Context, id ulid.ULID) (*payment.ArchivedPayment, error) {
	return nil, nil
}
func (f *fakePaymentRepository) ListArchived(ctx context.Context, pagination *pkg.PaginationParams) ([]*payment.ArchivedPayment, int64, error) {
	return nil, 0, nil
}
func (f *fakePaymentRepository) Purge(ctx context.Context, id ulid.ULID) error { return nil }

type fakeStatsRepository struct{}

func (f *fakeStatsRepository) Get(ctx context.Context) (*stats.GlobalStats, error) {
	return &stats.GlobalStats{
		Id:               stats.SingletonId,
		TotalBillsAmount: 4400,
		UnitTarget:       100,
		LastUpdated:      time.Now(),
	}, nil
}
func (f *fakeStatsRepository) Recompute(ctx context.Context, unitCount int) (*stats.GlobalStats, error) {
	return nil, nil
}
func (f *fakeStatsRepository) SetOverride(ctx context.Context, enabled bool, target float64) error {
	return nil
}
func (f *fakeStatsRepository) SetUnclaimed(ctx context.Context, amount float64) error { return nil }

func newTestService(unitRepo unit.Repository, paymentRepo payment.Repository) *dashboard.Service {
	statsSvc := stats.NewService(&fakeStatsRepository{}, unitRepo, 44)
	return dashboard.NewService(unitRepo, paymentRepo, statsSvc, nil)
}

func TestServiceGetOverview(t *testing.T) {
	t.Parallel()

	unitRepo := &fakeUnitRepository{
		listFn: func(ctx context.Context) ([]*unit.Unit, error) {
			return []*unit.Unit{
				{Id: "E-01", OwnerName: "Maria", TotalContributed: 300, IsHighlighted: true},
				{Id: "E-02", OwnerName: "João", TotalContributed: 0, PublicNote: "isento"},
			}, nil
		},
		sumTotalsFn: func(ctx context.Context) (float64, error) { return 300, nil },
	}
	paymentRepo := &fakePaymentRepository{
		pendingSumByUnitFn: func(ctx context.Context) (map[string]float64, error) {
			return map[string]float64{"E-02": 120}, nil
		},
	}

	overview, err := newTestService(unitRepo, paymentRepo).GetOverview(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(overview.Units) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(overview.Units))
	}
	if overview.Units[0].PendingAmount != 0 || overview.Units[1].PendingAmount != 120 {
		t.Fatalf("pending overlay wrong: %+v", overview.Units)
	}
	if !overview.Units[0].IsHighlighted || overview.Units[1].PublicNote != "isento" {
		t.Fatalf("unit flags must surface on the rows: %+v", overview.Units)
	}
	if overview.Summary == nil || overview.Summary.TotalBillsAmount != 4400 {
		t.Fatalf("expected summary attached, got %+v", overview.Summary)
	}
	if overview.GeneratedAt.IsZero() {
		t.Fatalf("expected generated timestamp")
	}
}

func TestServiceGetOverviewBlockFilter(t *testing.T) {
	t.Parallel()

	unitRepo := &fakeUnitRepository{
		listFn: func(ctx context.Context) ([]*unit.Unit, error) {
			return []*unit.Unit{
				{Id: "E-01"},
				{Id: "F-01"},
			}, nil
		},
	}

	overview, err := newTestService(unitRepo, &fakePaymentRepository{}).GetOverview(context.Background(), "E")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(overview.Units) != 1 || overview.Units[0].UnitId != "E-01" {
		t.Fatalf("expected only block E units, got %+v", overview.Units)
	}
	if overview.Block != "E" {
		t.Fatalf("expected block echoed back, got %q", overview.Block)
	}
}

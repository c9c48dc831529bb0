package bill_test

import (
	"context"
	"testing"
	"time"

	"Rateio/internal/domain/bill"
	domaincontracts "Rateio/internal/domain/contracts"
)

type fakeBillRepository struct {
	upsertFn  func(ctx context.Context, b *bill.Bill) error
	deleteFn  func(ctx context.Context, id string) error
	getByIDFn func(ctx context.Context, id string) (*bill.Bill, error)
	listFn    func(ctx context.Context) ([]*bill.Bill, error)
}

func (f *fakeBillRepository) Upsert(ctx context.Context, b *bill.Bill) error {
	if f.upsertFn != nil {
		return f.upsertFn(ctx, b)
	}
	return nil
}

func (f *fakeBillRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeBillRepository) GetById(ctx context.Context, id string) (*bill.Bill, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return &bill.Bill{Id: id}, nil
}

func (f *fakeBillRepository) List(ctx context.Context) ([]*bill.Bill, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func TestPeriodId(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year  int
		month int
		want  string
	}{
		{2025, 1, "2025-01"},
		{2025, 12, "2025-12"},
		{2030, 7, "2030-07"},
	}

	for _, tt := range tests {
		if got := bill.PeriodId(tt.year, tt.month); got != tt.want {
			t.Fatalf("PeriodId(%d, %d) = %q, want %q", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	issueDate := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		request domaincontracts.BillUpsertRequest
		wantErr bool
	}{
		{
			name:    "valid",
			request: domaincontracts.BillUpsertRequest{Month: 3, Year: 2025, Amount: 380.44, IssueDate: issueDate},
		},
		{
			name:    "month too low",
			request: domaincontracts.BillUpsertRequest{Month: 0, Year: 2025, Amount: 100, IssueDate: issueDate},
			wantErr: true,
		},
		{
			name:    "month too high",
			request: domaincontracts.BillUpsertRequest{Month: 13, Year: 2025, Amount: 100, IssueDate: issueDate},
			wantErr: true,
		},
		{
			name:    "year out of range",
			request: domaincontracts.BillUpsertRequest{Month: 6, Year: 1999, Amount: 100, IssueDate: issueDate},
			wantErr: true,
		},
		{
			name:    "non positive amount",
			request: domaincontracts.BillUpsertRequest{Month: 6, Year: 2025, Amount: 0, IssueDate: issueDate},
			wantErr: true,
		},
		{
			name:    "missing issue date",
			request: domaincontracts.BillUpsertRequest{Month: 6, Year: 2025, Amount: 100},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := bill.Validate(tt.request)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestServiceSaveBillUsesPeriodId(t *testing.T) {
	t.Parallel()

	var stored *bill.Bill
	svc := bill.NewService(&fakeBillRepository{
		upsertFn: func(ctx context.Context, b *bill.Bill) error {
			stored = b
			return nil
		},
	})

	entity, err := svc.SaveBill(context.Background(), &domaincontracts.BillUpsertRequest{
		Month:     2,
		Year:      2025,
		Amount:    412.30,
		IssueDate: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entity.Id != "2025-02" {
		t.Fatalf("expected id 2025-02, got %q", entity.Id)
	}
	if stored == nil || stored.Id != entity.Id {
		t.Fatalf("expected upsert with same id")
	}
}

// Regravar o mesmo período produz o mesmo id: a conta é substituída, nunca
// duplicada.
func TestServiceSaveBillSamePeriodSameId(t *testing.T) {
	t.Parallel()

	svc := bill.NewService(&fakeBillRepository{})
	ctx := context.Background()

	first, err := svc.SaveBill(ctx, &domaincontracts.BillUpsertRequest{
		Month: 5, Year: 2025, Amount: 100, IssueDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.SaveBill(ctx, &domaincontracts.BillUpsertRequest{
		Month: 5, Year: 2025, Amount: 250, IssueDate: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Id != second.Id {
		t.Fatalf("expected same id for same period, got %q and %q", first.Id, second.Id)
	}
}

func TestServiceDeleteBillRequiresId(t *testing.T) {
	t.Parallel()

	svc := bill.NewService(&fakeBillRepository{})
	if err := svc.DeleteBill(context.Background(), ""); err == nil {
		t.Fatalf("expected error")
	}
}

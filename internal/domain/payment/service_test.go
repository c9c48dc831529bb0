package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	domaincontracts "Rateio/internal/domain/contracts"
	"Rateio/internal/domain/payment"
	"Rateio/internal/domain/unit"
	appErrors "Rateio/internal/errors"
	"Rateio/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type fakePaymentRepository struct {
	createWithLedgerFn    func(ctx context.Context, p *payment.Payment) error
	approveFn             func(ctx context.Context, pendingID ulid.ULID, approved *payment.Payment) error
	rejectFn              func(ctx context.Context, pendingID ulid.ULID, reason string, archiveID ulid.ULID, archivedAt time.Time) error
	archiveApprovedFn     func(ctx context.Context, paymentID ulid.ULID, archiveID ulid.ULID, archivedAt time.Time) (*payment.ArchivedPayment, error)
	getPaymentByIDFn      func(ctx context.Context, id ulid.ULID) (*payment.Payment, error)
	createPendingFn       func(ctx context.Context, p *payment.PendingPayment) error
	getPendingByIDFn      func(ctx context.Context, id ulid.ULID) (*payment.PendingPayment, error)
	updatePendingFieldsFn func(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error
	getArchivedByIDFn     func(ctx context.Context, id ulid.ULID) (*payment.ArchivedPayment, error)
	purgeFn               func(ctx context.Context, id ulid.ULID) error
}

func (f *fakePaymentRepository) CreateWithLedger(ctx context.Context, p *payment.Payment) error {
	if f.createWithLedgerFn != nil {
		return f.createWithLedgerFn(ctx, p)
	}
	return nil
}

func (f *fakePaymentRepository) Approve(ctx context.Context, pendingID ulid.ULID, approved *payment.Payment) error {
	if f.approveFn != nil {
		return f.approveFn(ctx, pendingID, approved)
	}
	return nil
}

func (f *fakePaymentRepository) Reject(ctx context.Context, pendingID ulid.ULID, reason string, archiveID ulid.ULID, archivedAt time.Time) error {
	if f.rejectFn != nil {
		return f.rejectFn(ctx, pendingID, reason, archiveID, archivedAt)
	}
	return nil
}

func (f *fakePaymentRepository) ArchiveApproved(ctx context.Context, paymentID ulid.ULID, archiveID ulid.ULID, archivedAt time.Time) (*payment.ArchivedPayment, error) {
	if f.archiveApprovedFn != nil {
		return f.archiveApprovedFn(ctx, paymentID, archiveID, archivedAt)
	}
	return &payment.ArchivedPayment{Id: archiveID, OriginalId: paymentID}, nil
}

func (f *fakePaymentRepository) GetPaymentById(ctx context.Context, id ulid.ULID) (*payment.Payment, error) {
	if f.getPaymentByIDFn != nil {
		return f.getPaymentByIDFn(ctx, id)
	}
	return &payment.Payment{Id: id}, nil
}

func (f *fakePaymentRepository) ListPayments(ctx context.Context, filters *payment.PaymentFilters, pagination *pkg.PaginationParams) ([]*payment.Payment, int64, error) {
	return nil, 0, nil
}

func (f *fakePaymentRepository) SumInWindow(ctx context.Context, from time.Time, unitIDs []string) (float64, error) {
	return 0, nil
}

func (f *fakePaymentRepository) CreatePending(ctx context.Context, p *payment.PendingPayment) error {
	if f.createPendingFn != nil {
		return f.createPendingFn(ctx, p)
	}
	return nil
}

func (f *fakePaymentRepository) GetPendingById(ctx context.Context, id ulid.ULID) (*payment.PendingPayment, error) {
	if f.getPendingByIDFn != nil {
		return f.getPendingByIDFn(ctx, id)
	}
	return &payment.PendingPayment{Id: id}, nil
}

func (f *fakePaymentRepository) UpdatePendingFields(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error {
	if f.updatePendingFieldsFn != nil {
		return f.updatePendingFieldsFn(ctx, id, fields)
	}
	return nil
}

func (f *fakePaymentRepository) ListPending(ctx context.Context) ([]*payment.PendingPayment, error) {
	return nil, nil
}

func (f *fakePaymentRepository) PendingSumByUnit(ctx context.Context) (map[string]float64, error) {
	return nil, nil
}

func (f *fakePaymentRepository) GetArchivedById(ctx context.Context, id ulid.ULID) (*payment.ArchivedPayment, error) {
	if f.getArchivedByIDFn != nil {
		return f.getArchivedByIDFn(ctx, id)
	}
	return &payment.ArchivedPayment{Id: id}, nil
}

func (f *fakePaymentRepository) ListArchived(ctx context.Context, pagination *pkg.PaginationParams) ([]*payment.ArchivedPayment, int64, error) {
	return nil, 0, nil
}

func (f *fakePaymentRepository) Purge(ctx context.Context, id ulid.ULID) error {
	if f.purgeFn != nil {
		return f.purgeFn(ctx, id)
	}
	return nil
}

type fakeUnitRepository struct {
	existsFn func(ctx context.Context, id string) (bool, error)
}

func (f *fakeUnitRepository) SeedBatch(ctx context.Context, units []*unit.Unit) error { return nil }
func (f *fakeUnitRepository) Count(ctx context.Context) (int64, error)               { return 0, nil }
func (f *fakeUnitRepository) GetById(ctx context.Context, id string) (*unit.Unit, error) {
	return &unit.Unit{Id: id}, nil
}
func (f *fakeUnitRepository) List(ctx context.Context) ([]*unit.Unit, error) { return nil, nil }
func (f *fakeUnitRepository) ListByBlock(ctx context.Context, block string) ([]*unit.Unit, error) {
	return nil, nil
}
func (f *fakeUnitRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return nil
}
func (f *fakeUnitRepository) SumTotals(ctx context.Context) (float64, error) { return 0, nil }
func (f *fakeUnitRepository) Exists(ctx context.Context, id string) (bool, error) {
	if f.existsFn != nil {
		return f.existsFn(ctx, id)
	}
	return true, nil
}

type fakeUploader struct {
	uploadFn func(ctx context.Context, filename, mimeType string, data []byte) (string, error)
}

func (f *fakeUploader) Upload(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
	if f.uploadFn != nil {
		return f.uploadFn(ctx, filename, mimeType, data)
	}
	return "https://drive.example/view", nil
}

func TestServiceSubmitPaymentValidations(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		request     domaincontracts.PaymentSubmitRequest
		unitExists  bool
		wantErrCode string
	}{
		{
			name:        "missing unit",
			request:     domaincontracts.PaymentSubmitRequest{Amount: 100, Date: date},
			unitExists:  true,
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "non positive amount",
			request:     domaincontracts.PaymentSubmitRequest{UnitId: "E-01", Amount: 0, Date: date},
			unitExists:  true,
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "missing date",
			request:     domaincontracts.PaymentSubmitRequest{UnitId: "E-01", Amount: 100},
			unitExists:  true,
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "unknown unit",
			request:     domaincontracts.PaymentSubmitRequest{UnitId: "Z-99", Amount: 100, Date: date},
			unitExists:  false,
			wantErrCode: appErrors.ErrUnitNotFound.Code,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := payment.NewService(
				&fakePaymentRepository{},
				&fakeUnitRepository{existsFn: func(ctx context.Context, id string) (bool, error) {
					return tt.unitExists, nil
				}},
				nil, nil,
			)

			_, err := svc.SubmitPayment(ctx, &tt.request)
			if err == nil {
				t.Fatalf("expected error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != tt.wantErrCode {
				t.Fatalf("expected code %s, got %s", tt.wantErrCode, appErr.Code)
			}
		})
	}
}

func TestServiceSubmitPaymentUploadFailureAborts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	created := false
	svc := payment.NewService(
		&fakePaymentRepository{
			createPendingFn: func(ctx context.Context, p *payment.PendingPayment) error {
				created = true
				return nil
			},
		},
		&fakeUnitRepository{},
		&fakeUploader{uploadFn: func(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
			return "", appErrors.ErrUploadFailed
		}},
		nil,
	)

	_, err := svc.SubmitPayment(ctx, &domaincontracts.PaymentSubmitRequest{
		UnitId: "E-03",
		Amount: 50,
		Date:   time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		Receipt: &domaincontracts.ReceiptFile{
			Name:        "comprovante.pdf",
			ContentType: "application/pdf",
			Data:        []byte("pdf"),
		},
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	appErr, _ := appErrors.AsAppError(err)
	if appErr == nil || appErr.Code != appErrors.ErrUploadFailed.Code {
		t.Fatalf("expected upload failure, got %v", err)
	}
	if created {
		t.Fatalf("pending payment must not be created when upload fails")
	}
}

func TestServiceSubmitPaymentStoresReceiptURL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	var stored *payment.PendingPayment
	svc := payment.NewService(
		&fakePaymentRepository{
			createPendingFn: func(ctx context.Context, p *payment.PendingPayment) error {
				stored = p
				return nil
			},
		},
		&fakeUnitRepository{},
		&fakeUploader{},
		nil,
	)

	entity, err := svc.SubmitPayment(ctx, &domaincontracts.PaymentSubmitRequest{
		UnitId:    "E-07",
		Amount:    120.50,
		Date:      time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		Reference: "  transferência fev  ",
		Receipt:   &domaincontracts.ReceiptFile{Name: "r.png", ContentType: "image/png", Data: []byte("img")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored == nil || stored != entity {
		t.Fatalf("expected pending stored via repository")
	}
	if stored.ReceiptUrl != "https://drive.example/view" {
		t.Fatalf("expected receipt url, got %q", stored.ReceiptUrl)
	}
	if stored.Reference != "transferência fev" {
		t.Fatalf("expected trimmed reference, got %q", stored.Reference)
	}
}

func TestServiceApprove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pendingID := ulid.Make()
	pending := &payment.PendingPayment{
		Id:         pendingID,
		UnitId:     "E-10",
		Amount:     200,
		Date:       time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		Reference:  "pix",
		ReceiptUrl: "https://drive.example/r",
	}

	t.Run("amount override is what gets credited", func(t *testing.T) {
		var approved *payment.Payment
		svc := payment.NewService(
			&fakePaymentRepository{
				getPendingByIDFn: func(ctx context.Context, id ulid.ULID) (*payment.PendingPayment, error) {
					return pending, nil
				},
				approveFn: func(ctx context.Context, id ulid.ULID, p *payment.Payment) error {
					approved = p
					return nil
				},
			},
			&fakeUnitRepository{}, nil, nil,
		)

		override := 180.0
		result, err := svc.Approve(ctx, &domaincontracts.ApproveRequest{PendingId: pendingID, Amount: &override})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if approved == nil || approved.Amount != 180 {
			t.Fatalf("expected approved amount 180, got %+v", approved)
		}
		if result.UnitId != "E-10" || result.ReceiptUrl != pending.ReceiptUrl || !result.Date.Equal(pending.Date) {
			t.Fatalf("approved payment must inherit unit, date and receipt: %+v", result)
		}
		if result.Id == pendingID {
			t.Fatalf("approved payment must receive a new id")
		}
	})

	t.Run("zero override rejected", func(t *testing.T) {
		svc := payment.NewService(
			&fakePaymentRepository{
				getPendingByIDFn: func(ctx context.Context, id ulid.ULID) (*payment.PendingPayment, error) {
					return pending, nil
				},
			},
			&fakeUnitRepository{}, nil, nil,
		)

		zero := 0.0
		_, err := svc.Approve(ctx, &domaincontracts.ApproveRequest{PendingId: pendingID, Amount: &zero})
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing pending", func(t *testing.T) {
		svc := payment.NewService(
			&fakePaymentRepository{
				getPendingByIDFn: func(ctx context.Context, id ulid.ULID) (*payment.PendingPayment, error) {
					return nil, appErrors.ErrPendingNotFound
				},
			},
			&fakeUnitRepository{}, nil, nil,
		)

		_, err := svc.Approve(ctx, &domaincontracts.ApproveRequest{PendingId: pendingID})
		if !errors.Is(err, appErrors.ErrPendingNotFound) {
			t.Fatalf("expected ErrPendingNotFound, got %v", err)
		}
	})
}

func TestServiceReject(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pendingID := ulid.Make()

	var gotReason string
	svc := payment.NewService(
		&fakePaymentRepository{
			rejectFn: func(ctx context.Context, id ulid.ULID, reason string, archiveID ulid.ULID, archivedAt time.Time) error {
				gotReason = reason
				return nil
			},
		},
		&fakeUnitRepository{}, nil, nil,
	)

	err := svc.Reject(ctx, &domaincontracts.RejectRequest{PendingId: pendingID, Reason: "  comprovante ilegível  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotReason != "comprovante ilegível" {
		t.Fatalf("expected trimmed reason, got %q", gotReason)
	}
}

func TestServiceDeletePayment(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	paymentID := ulid.Make()

	t.Run("archives through repository", func(t *testing.T) {
		var archivedPaymentID ulid.ULID
		svc := payment.NewService(
			&fakePaymentRepository{
				archiveApprovedFn: func(ctx context.Context, pid ulid.ULID, archiveID ulid.ULID, archivedAt time.Time) (*payment.ArchivedPayment, error) {
					archivedPaymentID = pid
					return &payment.ArchivedPayment{Id: archiveID, OriginalId: pid, Source: payment.ArchiveDeleted}, nil
				},
			},
			&fakeUnitRepository{}, nil, nil,
		)

		archived, err := svc.DeletePayment(ctx, paymentID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if archivedPaymentID != paymentID {
			t.Fatalf("expected payment %s archived, got %s", paymentID, archivedPaymentID)
		}
		if archived.Source != payment.ArchiveDeleted {
			t.Fatalf("expected source deleted, got %s", archived.Source)
		}
	})

	t.Run("insufficient total propagates", func(t *testing.T) {
		svc := payment.NewService(
			&fakePaymentRepository{
				archiveApprovedFn: func(ctx context.Context, pid ulid.ULID, archiveID ulid.ULID, archivedAt time.Time) (*payment.ArchivedPayment, error) {
					return nil, appErrors.ErrInsufficientTotal
				},
			},
			&fakeUnitRepository{}, nil, nil,
		)

		_, err := svc.DeletePayment(ctx, paymentID)
		if !errors.Is(err, appErrors.ErrInsufficientTotal) {
			t.Fatalf("expected ErrInsufficientTotal, got %v", err)
		}
	})
}

func TestServiceCreatePaymentWithoutUploaderAndReceipt(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := payment.NewService(&fakePaymentRepository{}, &fakeUnitRepository{}, nil, nil)

	_, err := svc.CreatePayment(ctx, &domaincontracts.PaymentCreateRequest{
		UnitId:  "E-01",
		Amount:  75,
		Date:    time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Receipt: &domaincontracts.ReceiptFile{Name: "r.png", ContentType: "image/png", Data: []byte("x")},
	})
	if err == nil {
		t.Fatalf("expected error when storage is disabled and a receipt is sent")
	}
	appErr, _ := appErrors.AsAppError(err)
	if appErr == nil || appErr.Code != appErrors.ErrUploadFailed.Code {
		t.Fatalf("expected UPLOAD_FAILED, got %v", err)
	}
}

func TestServiceUpdatePending(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pendingID := ulid.Make()

	t.Run("no fields", func(t *testing.T) {
		svc := payment.NewService(&fakePaymentRepository{}, &fakeUnitRepository{}, nil, nil)
		err := svc.UpdatePending(ctx, &domaincontracts.PendingUpdateRequest{Id: pendingID})
		if err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("updates amount and reference", func(t *testing.T) {
		var gotFields map[string]interface{}
		svc := payment.NewService(
			&fakePaymentRepository{
				updatePendingFieldsFn: func(ctx context.Context, id ulid.ULID, fields map[string]interface{}) error {
					gotFields = fields
					return nil
				},
			},
			&fakeUnitRepository{}, nil, nil,
		)

		amount := 99.9
		reference := "ajustado"
		err := svc.UpdatePending(ctx, &domaincontracts.PendingUpdateRequest{Id: pendingID, Amount: &amount, Reference: &reference})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotFields["amount"] != 99.9 || gotFields["reference"] != "ajustado" {
			t.Fatalf("unexpected fields: %+v", gotFields)
		}
	})
}
